package scheduler

import "github.com/QSI-BAQS/pathsearch/core"

// Scheduler couples the time and space trackers of one node of the tree.
type Scheduler struct {
	time  *PathGenerator
	space *Graph
}

// New creates a Scheduler for the items of graph constrained by deps. The
// dependency graph must list every item of the memory graph exactly once.
func New(deps DependencyGraph, graph MemoryGraph) (*Scheduler, error) {
	space, err := NewGraph(graph)
	if err != nil {
		return nil, err
	}
	time, err := NewPathGenerator(deps, len(graph))
	if err != nil {
		return nil, err
	}
	return &Scheduler{time: time, space: space}, nil
}

// Time returns the dependency tracker.
func (s *Scheduler) Time() *PathGenerator { return s.time }

// Space returns the memory tracker.
func (s *Scheduler) Space() *Graph { return s.space }

// Items returns the total number of items.
func (s *Scheduler) Items() int { return s.time.buf.items }

// Measurable returns the items that may be measured now.
func (s *Scheduler) Measurable() core.MeasurableSet { return s.time.Measurable() }

// FocusInPlace measures set on the receiver.
func (s *Scheduler) FocusInPlace(set core.MeasurableSet) error {
	if err := s.time.Focus(set); err != nil {
		return err
	}
	return s.space.Focus(set)
}

// Focus returns a copy of the receiver with set measured.
func (s *Scheduler) Focus(set core.MeasurableSet) (*Scheduler, error) {
	next := s.Clone()
	if err := next.FocusInPlace(set); err != nil {
		return nil, err
	}
	return next, nil
}

// Clone returns an independent copy.
func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{time: s.time.Clone(), space: s.space.Clone()}
}

// Sweep returns a depth-first sweep over every ordering that continues from
// the receiver. The receiver itself is not modified.
func (s *Scheduler) Sweep() *Sweep {
	return newSweep(s.Clone())
}
