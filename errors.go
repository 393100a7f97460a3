package pathsearch

import (
	"errors"
	"fmt"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/internal/search"
	"github.com/QSI-BAQS/pathsearch/scheduler"
)

var (
	// ErrInvalidGraph is returned when the dependency or memory graph is malformed.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrInvalidThreads is returned when the thread count is not positive.
	ErrInvalidThreads = errors.New("thread count must be positive")

	// ErrWorkerPanic is returned when a search worker panicked. The search is
	// aborted and no results are returned.
	ErrWorkerPanic = errors.New("search worker panicked")

	// ErrNotMeasurable is returned when an item is measured before its dependencies.
	ErrNotMeasurable = errors.New("item is not measurable")

	// ErrAlreadyMeasured is returned when an item is measured twice.
	ErrAlreadyMeasured = errors.New("item already measured")

	// ErrNoBranch is returned when there is no branch left to skip.
	ErrNoBranch = errors.New("no branch to skip")
)

// ErrInvalidItem indicates a malformed entry of an input graph.
//
// It matches ErrInvalidGraph with errors.Is. The original underlying error
// can be accessed via errors.Unwrap.
type ErrInvalidItem struct {
	Item   int
	Reason string
	cause  error
}

func (e *ErrInvalidItem) Error() string {
	return fmt.Sprintf("invalid graph: item %d: %s", e.Item, e.Reason)
}

func (e *ErrInvalidItem) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidGraph.
func (e *ErrInvalidItem) Is(target error) bool { return target == ErrInvalidGraph }

// ErrTaskFailed indicates that one search task failed and aborted the search.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrTaskFailed struct {
	Task  int
	Seed  core.Path
	cause error
}

func (e *ErrTaskFailed) Error() string {
	return fmt.Sprintf("search task %d (seed %v) failed: %v", e.Task, e.Seed, e.cause)
}

func (e *ErrTaskFailed) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Input validation.
	var ii *scheduler.ErrInvalidItem
	if errors.As(err, &ii) {
		return &ErrInvalidItem{Item: ii.Item, Reason: ii.Reason, cause: err}
	}
	if errors.Is(err, scheduler.ErrInvalidGraph) {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if errors.Is(err, search.ErrInvalidThreads) {
		return fmt.Errorf("%w: %w", ErrInvalidThreads, err)
	}

	// Task failures keep their position in the tree.
	var te *search.TaskError
	if errors.As(err, &te) {
		cause := te.Err
		if errors.Is(cause, search.ErrWorkerPanic) {
			cause = fmt.Errorf("%w: %w", ErrWorkerPanic, cause)
		} else {
			cause = translateError(cause)
		}
		return &ErrTaskFailed{Task: te.ID, Seed: te.Seed, cause: cause}
	}

	// Stepping errors.
	if errors.Is(err, scheduler.ErrNotMeasurable) {
		return fmt.Errorf("%w: %w", ErrNotMeasurable, err)
	}
	if errors.Is(err, scheduler.ErrAlreadyMeasured) {
		return fmt.Errorf("%w: %w", ErrAlreadyMeasured, err)
	}
	if errors.Is(err, scheduler.ErrNoBranch) {
		return fmt.Errorf("%w: %w", ErrNoBranch, err)
	}

	return err
}
