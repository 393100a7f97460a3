package scheduler

import (
	"fmt"
	"slices"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/RoaringBitmap/roaring/v2"
)

// PathGenerator tracks which items may be measured next.
type PathGenerator struct {
	buf        *dependencyBuffer
	measurable []int
	missing    []int
	measured   *roaring.Bitmap
	pending    int
}

// NewPathGenerator creates a PathGenerator for items 0..items-1 constrained by deps.
func NewPathGenerator(deps DependencyGraph, items int) (*PathGenerator, error) {
	buf, err := newDependencyBuffer(deps, items)
	if err != nil {
		return nil, err
	}
	return newPathGenerator(buf), nil
}

func newPathGenerator(buf *dependencyBuffer) *PathGenerator {
	return &PathGenerator{
		buf:        buf,
		measurable: slices.Clone(buf.first),
		missing:    slices.Clone(buf.missing),
		measured:   roaring.New(),
		pending:    buf.items - len(buf.first),
	}
}

// Measurable returns the items that may be measured now, in ascending order.
func (g *PathGenerator) Measurable() core.MeasurableSet {
	return slices.Clone(g.measurable)
}

// Measured returns the number of items measured so far.
func (g *PathGenerator) Measured() int {
	return int(g.measured.GetCardinality())
}

// AtLeaf reports whether every item has been measured.
func (g *PathGenerator) AtLeaf() bool {
	return len(g.measurable) == 0 && g.pending == 0
}

// HasUnmeasurable reports whether some items still wait for dependencies.
func (g *PathGenerator) HasUnmeasurable() bool {
	return g.pending > 0
}

// Focus measures every item of set. All of them must be measurable.
func (g *PathGenerator) Focus(set core.MeasurableSet) error {
	set = normalize(set)
	for _, item := range set {
		if g.measured.Contains(uint32(item)) {
			return fmt.Errorf("%w: %d", ErrAlreadyMeasured, item)
		}
		if _, ok := slices.BinarySearch(g.measurable, item); !ok {
			return fmt.Errorf("%w: %d", ErrNotMeasurable, item)
		}
	}

	g.measurable = slices.DeleteFunc(g.measurable, func(item int) bool {
		_, ok := slices.BinarySearch(set, item)
		return ok
	})
	for _, item := range set {
		g.measured.Add(uint32(item))
		for _, dep := range g.buf.dependents[item] {
			g.missing[dep]--
			if g.missing[dep] == 0 {
				g.measurable = append(g.measurable, dep)
				g.pending--
			}
		}
	}
	slices.Sort(g.measurable)
	return nil
}

// Clone returns an independent copy sharing the immutable dependency data.
func (g *PathGenerator) Clone() *PathGenerator {
	return &PathGenerator{
		buf:        g.buf,
		measurable: slices.Clone(g.measurable),
		missing:    slices.Clone(g.missing),
		measured:   g.measured.Clone(),
		pending:    g.pending,
	}
}

// normalize returns set sorted and free of duplicates.
func normalize(set core.MeasurableSet) core.MeasurableSet {
	strict := true
	for i := 1; i < len(set); i++ {
		if set[i] <= set[i-1] {
			strict = false
			break
		}
	}
	if strict {
		return set
	}
	out := slices.Clone(set)
	slices.Sort(out)
	return slices.Compact(out)
}
