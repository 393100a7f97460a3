package core

import "fmt"

// StepKind tags a transition yielded by a StepSource.
type StepKind uint8

const (
	// Forward commits a measurable set and descends one level.
	Forward StepKind = iota
	// Backward leaves the current node after all its children were visited.
	Backward
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("StepKind(%d)", uint8(k))
	}
}

// Step is one transition of a tree sweep.
//
// For Forward steps Set holds the committed measurable set. For Backward
// steps Leaf reports whether the node being left completed an ordering, in
// which case Memory is the peak memory of that ordering.
type Step struct {
	Kind   StepKind
	Set    MeasurableSet
	Leaf   bool
	Memory int
}

// ForwardStep returns a Forward step committing set.
func ForwardStep(set MeasurableSet) Step {
	return Step{Kind: Forward, Set: set}
}

// BackwardStep returns a Backward step that did not complete an ordering.
func BackwardStep() Step {
	return Step{Kind: Backward}
}

// LeafStep returns a Backward step leaving a leaf with the given peak memory.
func LeafStep(memory int) Step {
	return Step{Kind: Backward, Leaf: true, Memory: memory}
}
