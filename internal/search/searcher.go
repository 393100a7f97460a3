package search

import (
	"context"

	"github.com/QSI-BAQS/pathsearch/core"
)

// pollMask sets how often the context is checked: once every pollMask+1 steps.
const pollMask = 1<<12 - 1

// Stats counts the work done by one or more searches.
type Stats struct {
	Forward  int64 // forward steps taken
	Backward int64 // backward steps taken
	Pruned   int64 // branches skipped
	Leaves   int64 // completed orderings reached
	Recorded int64 // completed orderings that improved the bound
}

// Add returns the sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Forward:  s.Forward + o.Forward,
		Backward: s.Backward + o.Backward,
		Pruned:   s.Pruned + o.Pruned,
		Leaves:   s.Leaves + o.Leaves,
		Recorded: s.Recorded + o.Recorded,
	}
}

// Outcome is what a finished search hands to the aggregator.
type Outcome struct {
	Bound   core.Bound
	Results core.ResultMap
	Stats   Stats
}

// Searcher runs a depth-first branch-and-bound search over one StepSource.
//
// Searcher is NOT thread-safe. It owns its source, path and bound for the
// duration of Run.
type Searcher struct {
	src     core.StepSource
	path    core.Path
	bound   core.Bound
	results core.ResultMap
	stats   Stats
}

// NewSearcher creates a Searcher over src. seed is the path leading to the
// root of src; bound is taken over and updated in place.
func NewSearcher(src core.StepSource, seed core.Path, bound core.Bound) *Searcher {
	return &Searcher{
		src:     src,
		path:    seed.Clone(),
		bound:   bound,
		results: make(core.ResultMap),
	}
}

// Run drives the source to exhaustion and returns the results of its subtree
// together with the updated bound.
//
// A task whose root already fails the bound is skipped entirely. If ctx is
// cancelled Run stops and returns the context error.
func (s *Searcher) Run(ctx context.Context) (Outcome, error) {
	if len(s.path) > 0 && s.prunable(len(s.path)-1) {
		s.stats.Pruned++
		return s.outcome(), nil
	}

	var steps uint64
	for {
		if steps&pollMask == 0 {
			if err := ctx.Err(); err != nil {
				return Outcome{}, err
			}
		}
		steps++

		step, ok := s.src.Next()
		if !ok {
			return s.outcome(), nil
		}

		switch step.Kind {
		case core.Forward:
			s.stats.Forward++
			if s.prunable(len(s.path)) {
				s.stats.Pruned++
				if err := s.src.SkipCurrent(); err != nil {
					return s.outcome(), nil
				}
				continue
			}
			s.path.Push(step.Set)
		case core.Backward:
			s.stats.Backward++
			if step.Leaf {
				s.record(step.Memory)
			}
			s.path.Pop()
		}
	}
}

// prunable reports whether the node just entered from a path of length
// parent can no longer beat the bound.
func (s *Searcher) prunable(parent int) bool {
	var minLen int
	switch {
	case s.src.AtLeaf():
		minLen = parent + 1
	case s.src.HasUnmeasurable():
		minLen = parent + 3
	default:
		minLen = parent + 2
	}
	return s.src.MaxMemory() >= s.bound.At(minLen)
}

func (s *Searcher) record(memory int) {
	s.stats.Leaves++
	length := len(s.path)
	if !s.bound.Record(length, memory) {
		return
	}
	s.stats.Recorded++
	s.results.Offer(core.Result{Length: length, Memory: memory, Path: s.path.Clone()})
}

func (s *Searcher) outcome() Outcome {
	return Outcome{Bound: s.bound, Results: s.results, Stats: s.stats}
}
