package scheduler

import (
	"fmt"

	"github.com/QSI-BAQS/pathsearch/core"
)

type frame struct {
	node     *Scheduler
	children *subsets
}

func newFrame(node *Scheduler) frame {
	return frame{node: node, children: newSubsets(node.time.measurable)}
}

// Sweep walks the tree of orderings below its root depth first.
//
// Every Forward step enters a child; every node, the root included, is left
// with exactly one Backward step once its children are exhausted, unless it
// was skipped. A Backward step leaving a leaf carries the peak memory of the
// ordering that ends there.
type Sweep struct {
	current frame
	stack   []frame
	done    bool
}

var (
	_ core.StepSource       = (*Sweep)(nil)
	_ core.SplittableSource = (*Sweep)(nil)
)

func newSweep(root *Scheduler) *Sweep {
	return &Sweep{current: newFrame(root)}
}

// Next implements core.StepSource.
func (s *Sweep) Next() (core.Step, bool) {
	if s.done {
		return core.Step{}, false
	}

	if set, ok := s.current.children.next(); ok {
		s.stack = append(s.stack, s.current)
		s.current = newFrame(s.enter(set))
		return core.ForwardStep(set), true
	}

	step := core.BackwardStep()
	if s.current.node.time.AtLeaf() {
		step = core.LeafStep(s.current.node.space.MaxMemory())
	}
	if len(s.stack) == 0 {
		s.done = true
		return step, true
	}
	s.pop()
	return step, true
}

// AtLeaf implements core.StepSource.
func (s *Sweep) AtLeaf() bool { return s.current.node.time.AtLeaf() }

// HasUnmeasurable implements core.StepSource.
func (s *Sweep) HasUnmeasurable() bool { return s.current.node.time.HasUnmeasurable() }

// MaxMemory implements core.StepSource.
func (s *Sweep) MaxMemory() int { return s.current.node.space.MaxMemory() }

// Current returns the scheduler of the node the sweep sits on.
func (s *Sweep) Current() *Scheduler { return s.current.node }

// Depth returns the number of Forward steps between the root and the current node.
func (s *Sweep) Depth() int { return len(s.stack) }

// SkipCurrent implements core.StepSource.
func (s *Sweep) SkipCurrent() error {
	if len(s.stack) == 0 {
		return ErrNoBranch
	}
	s.pop()
	return nil
}

// NextAndFocus implements core.SplittableSource. It only splits while the
// sweep sits on its root.
func (s *Sweep) NextAndFocus() (core.StepSource, core.MeasurableSet, bool) {
	if s.done || len(s.stack) > 0 {
		return nil, nil, false
	}
	set, ok := s.current.children.next()
	if !ok {
		return nil, nil, false
	}
	return newSweep(s.enter(set)), set, true
}

func (s *Sweep) enter(set core.MeasurableSet) *Scheduler {
	child, err := s.current.node.Focus(set)
	if err != nil {
		// Subsets of the measurable items always focus cleanly.
		panic(fmt.Sprintf("scheduler: focus on enumerated subset %v: %v", set, err))
	}
	return child
}

func (s *Sweep) pop() {
	n := len(s.stack) - 1
	s.current = s.stack[n]
	s.stack[n] = frame{}
	s.stack = s.stack[:n]
}
