package search

import "github.com/QSI-BAQS/pathsearch/core"

// Task is an independent unit of search work: a source focused on one
// subtree and the path leading to its root.
type Task struct {
	ID        int
	Seed      core.Path
	Source    core.StepSource
	Remainder bool
}

// Splitter hands out the first-layer subtrees of a root source as tasks.
//
// After at most limit explicit tasks (unlimited if limit is negative) the
// partially consumed root is returned by Remainder, so that every leaf of the
// tree belongs to exactly one task.
type Splitter struct {
	root   core.SplittableSource
	limit  int
	issued int
	done   bool
}

// NewSplitter creates a Splitter over root.
func NewSplitter(root core.SplittableSource, limit int) *Splitter {
	return &Splitter{root: root, limit: limit}
}

// Next returns the next explicit task, or false once the task limit is
// reached or the first layer is exhausted.
func (s *Splitter) Next() (Task, bool) {
	if s.done || (s.limit >= 0 && s.issued >= s.limit) {
		s.done = true
		return Task{}, false
	}
	src, set, ok := s.root.NextAndFocus()
	if !ok {
		s.done = true
		return Task{}, false
	}
	task := Task{ID: s.issued, Seed: core.Path{set}, Source: src}
	s.issued++
	return task, true
}

// Issued returns the number of explicit tasks handed out so far.
func (s *Splitter) Issued() int { return s.issued }

// Remainder returns the catch-all task over whatever the explicit tasks left
// of the root. It must be called once, after Next returned false.
func (s *Splitter) Remainder() Task {
	return Task{ID: s.issued, Source: s.root, Remainder: true}
}
