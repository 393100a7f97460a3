package search

import (
	"sync"
	"time"

	"github.com/QSI-BAQS/pathsearch/core"
)

// TaskReport describes one task outcome after it was merged.
type TaskReport struct {
	ID        int
	Seed      core.Path
	Remainder bool
	Stats     Stats
	Duration  time.Duration
	Improved  bool       // the task tightened the global bound
	Bound     core.Bound // global bound after the merge
}

type message struct {
	task     Task
	outcome  Outcome
	duration time.Duration
}

// Aggregator owns the global bound and result map of a parallel search.
//
// Merge is the only writer. Workers read the bound through Snapshot.
type Aggregator struct {
	mu      sync.RWMutex
	bound   core.Bound
	results core.ResultMap

	stats Stats
	tasks int
}

// NewAggregator creates an Aggregator for the given number of items.
func NewAggregator(items int) *Aggregator {
	return &Aggregator{
		bound:   core.NewBound(items),
		results: make(core.ResultMap),
	}
}

// Snapshot returns a private copy of the global bound.
func (a *Aggregator) Snapshot() core.Bound {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bound.Clone()
}

// Merge folds one task outcome into the global state. For every length whose
// bound the task strictly improved, the global bound takes the task's value
// and the task's result of that length, if any, replaces the global one.
// Merging the same outcome twice changes nothing. It reports whether
// anything changed.
func (a *Aggregator) Merge(o Outcome) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	changed := false
	for i := 0; i < len(o.Bound) && i < len(a.bound); i++ {
		if o.Bound[i] >= a.bound[i] {
			continue
		}
		a.bound[i] = o.Bound[i]
		changed = true
		if r, ok := o.Results[i]; ok {
			a.results[i] = r
		}
	}
	return changed
}

// run drains ch until it is closed. report, if not nil, is called after every merge.
func (a *Aggregator) run(ch <-chan message, report func(TaskReport)) {
	for msg := range ch {
		improved := a.Merge(msg.outcome)
		a.stats = a.stats.Add(msg.outcome.Stats)
		a.tasks++
		if report != nil {
			report(TaskReport{
				ID:        msg.task.ID,
				Seed:      msg.task.Seed,
				Remainder: msg.task.Remainder,
				Stats:     msg.outcome.Stats,
				Duration:  msg.duration,
				Improved:  improved,
				Bound:     a.Snapshot(),
			})
		}
	}
}

// State returns the global bound and result map. It must not be called
// while tasks are still being merged.
func (a *Aggregator) State() (core.Bound, core.ResultMap) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bound, a.results
}

// Stats returns the summed statistics and the number of merged tasks.
func (a *Aggregator) Stats() (Stats, int) {
	return a.stats, a.tasks
}
