package scheduler

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Dependency is an item together with the items that must be measured before it.
//
// On the wire a Dependency is the two-element array [item, [deps...]].
type Dependency struct {
	Item int
	Deps []int
}

// MarshalJSON implements json.Marshaler.
func (d Dependency) MarshalJSON() ([]byte, error) {
	deps := d.Deps
	if deps == nil {
		deps = []int{}
	}
	return json.Marshal([]any{d.Item, deps})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("dependency: expected [item, deps], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &d.Item); err != nil {
		return fmt.Errorf("dependency item: %w", err)
	}
	if err := json.Unmarshal(raw[1], &d.Deps); err != nil {
		return fmt.Errorf("dependency deps: %w", err)
	}
	return nil
}

// DependencyGraph groups items into layers. Items of layer k depend only on
// items of layers before k; the first layer has no dependencies.
type DependencyGraph [][]Dependency

// Items returns the number of items listed across all layers.
func (g DependencyGraph) Items() int {
	n := 0
	for _, layer := range g {
		n += len(layer)
	}
	return n
}

// MemoryGraph is the sparse adjacency list of the memory graph: entry i lists
// the neighbours of item i.
type MemoryGraph [][]int

// dependencyBuffer is the immutable part of a PathGenerator, shared by every
// node of a sweep.
type dependencyBuffer struct {
	items      int
	first      []int
	missing    []int
	dependents [][]int
}

func newDependencyBuffer(deps DependencyGraph, items int) (*dependencyBuffer, error) {
	if deps.Items() != items {
		return nil, fmt.Errorf("%w: dependency graph lists %d items, memory graph has %d",
			ErrInvalidGraph, deps.Items(), items)
	}

	layerOf := make([]int, items)
	for i := range layerOf {
		layerOf[i] = -1
	}
	for k, layer := range deps {
		for _, d := range layer {
			if d.Item < 0 || d.Item >= items {
				return nil, &ErrInvalidItem{Item: d.Item, Reason: "out of range"}
			}
			if layerOf[d.Item] >= 0 {
				return nil, &ErrInvalidItem{Item: d.Item, Reason: "listed twice"}
			}
			layerOf[d.Item] = k
		}
	}

	buf := &dependencyBuffer{
		items:      items,
		missing:    make([]int, items),
		dependents: make([][]int, items),
	}
	for k, layer := range deps {
		for _, d := range layer {
			seen := make(map[int]struct{}, len(d.Deps))
			for _, dep := range d.Deps {
				if dep < 0 || dep >= items {
					return nil, &ErrInvalidItem{Item: d.Item, Reason: fmt.Sprintf("dependency %d out of range", dep)}
				}
				if layerOf[dep] >= k {
					return nil, &ErrInvalidItem{Item: d.Item, Reason: fmt.Sprintf("dependency %d is not in an earlier layer", dep)}
				}
				if _, dup := seen[dep]; dup {
					continue
				}
				seen[dep] = struct{}{}
				buf.dependents[dep] = append(buf.dependents[dep], d.Item)
				buf.missing[d.Item]++
			}
			if buf.missing[d.Item] == 0 {
				buf.first = append(buf.first, d.Item)
			}
		}
	}
	slices.Sort(buf.first)
	return buf, nil
}

func validateMemoryGraph(graph MemoryGraph) error {
	for i, nbs := range graph {
		for _, nb := range nbs {
			if nb < 0 || nb >= len(graph) {
				return &ErrInvalidItem{Item: i, Reason: fmt.Sprintf("neighbour %d out of range", nb)}
			}
		}
	}
	return nil
}
