package search

import (
	"errors"
	"fmt"

	"github.com/QSI-BAQS/pathsearch/core"
)

var (
	// ErrWorkerPanic is returned when a search task panics.
	ErrWorkerPanic = errors.New("search worker panicked")

	// ErrInvalidThreads is returned when the thread count is not positive.
	ErrInvalidThreads = errors.New("thread count must be positive")
)

// TaskError reports the failure of one search task.
type TaskError struct {
	ID   int
	Seed core.Path
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("search task %d (seed %v): %v", e.ID, e.Seed, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }
