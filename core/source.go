package core

// StepSource is a stateful sweep over a tree of measurement orderings.
//
// Position queries (AtLeaf, HasUnmeasurable, MaxMemory) describe the node the
// sweep currently sits on, i.e. the node entered by the latest Forward step.
// Implementations are not safe for concurrent use; every search task owns its
// source exclusively.
type StepSource interface {
	// Next yields the next transition, or false once the sweep is exhausted.
	Next() (Step, bool)

	// AtLeaf reports whether every item has been measured at the current node.
	AtLeaf() bool

	// HasUnmeasurable reports whether some unmeasured items still wait for
	// unmeasured dependencies at the current node.
	HasUnmeasurable() bool

	// MaxMemory returns the peak memory along the path to the current node.
	MaxMemory() int

	// SkipCurrent abandons the current node without descending into it and
	// without yielding a Backward step for it. It fails when there is no
	// branch left to skip.
	SkipCurrent() error
}

// SplittableSource is a StepSource that can hand out its first-layer subtrees
// as independent sources.
type SplittableSource interface {
	StepSource

	// NextAndFocus returns the next unvisited child of the root as a new,
	// independent source rooted at that child, together with the measurable
	// set leading to it. The child is consumed: the receiver will not visit
	// it again. It returns false when the first layer is exhausted.
	NextAndFocus() (StepSource, MeasurableSet, bool)
}
