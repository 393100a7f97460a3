package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph is returned when the dependency or memory graph is malformed.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrNotMeasurable is returned when focusing on an item whose dependencies
	// have not all been measured.
	ErrNotMeasurable = errors.New("item is not measurable")

	// ErrAlreadyMeasured is returned when focusing on an item twice.
	ErrAlreadyMeasured = errors.New("item already measured")

	// ErrNoBranch is returned by SkipCurrent when the sweep sits on its root.
	ErrNoBranch = errors.New("no branch to skip")
)

// ErrInvalidItem describes a malformed entry of an input graph.
//
// It matches ErrInvalidGraph with errors.Is.
type ErrInvalidItem struct {
	Item   int
	Reason string
}

func (e *ErrInvalidItem) Error() string {
	return fmt.Sprintf("invalid graph: item %d: %s", e.Item, e.Reason)
}

// Is reports whether target is ErrInvalidGraph.
func (e *ErrInvalidItem) Is(target error) bool {
	return target == ErrInvalidGraph
}
