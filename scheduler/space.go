package scheduler

import (
	"fmt"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/RoaringBitmap/roaring/v2"
)

// Graph tracks the memory occupied while items are measured.
//
// Every item starts asleep. Measuring an item initialises it and all of its
// neighbours that are neither initialised nor measured; each initialised
// item occupies one unit of memory until it is measured.
type Graph struct {
	neighbors MemoryGraph
	inMemory  *roaring.Bitmap
	measured  *roaring.Bitmap
	current   int
	max       int
}

// NewGraph creates a memory tracker for the given memory graph.
func NewGraph(graph MemoryGraph) (*Graph, error) {
	if err := validateMemoryGraph(graph); err != nil {
		return nil, err
	}
	return &Graph{
		neighbors: graph,
		inMemory:  roaring.New(),
		measured:  roaring.New(),
	}, nil
}

// CurrentMemory returns the number of items currently held in memory.
func (g *Graph) CurrentMemory() int {
	return g.current
}

// MaxMemory returns the peak memory observed so far.
func (g *Graph) MaxMemory() int {
	return g.max
}

// Focus measures every item of set in one step.
func (g *Graph) Focus(set core.MeasurableSet) error {
	set = normalize(set)
	for _, item := range set {
		if item < 0 || item >= len(g.neighbors) {
			return &ErrInvalidItem{Item: item, Reason: "out of range"}
		}
		if g.measured.Contains(uint32(item)) {
			return fmt.Errorf("%w: %d", ErrAlreadyMeasured, item)
		}
	}

	for _, item := range set {
		g.initialize(item)
		for _, nb := range g.neighbors[item] {
			g.initialize(nb)
		}
	}
	if g.current > g.max {
		g.max = g.current
	}
	for _, item := range set {
		g.inMemory.Remove(uint32(item))
		g.measured.Add(uint32(item))
		g.current--
	}
	return nil
}

func (g *Graph) initialize(item int) {
	id := uint32(item)
	if g.measured.Contains(id) || g.inMemory.Contains(id) {
		return
	}
	g.inMemory.Add(id)
	g.current++
}

// Clone returns an independent copy sharing the immutable adjacency list.
func (g *Graph) Clone() *Graph {
	return &Graph{
		neighbors: g.neighbors,
		inMemory:  g.inMemory.Clone(),
		measured:  g.measured.Clone(),
		current:   g.current,
		max:       g.max,
	}
}
