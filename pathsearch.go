package pathsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/internal/search"
	"github.com/QSI-BAQS/pathsearch/scheduler"
)

// Mode names how a Result was produced.
type Mode string

const (
	ModeSearch Mode = "search"
	ModeGreedy Mode = "greedy"
)

// Stats counts the work done by a search.
type Stats struct {
	Forward  int64 // forward steps taken
	Backward int64 // backward steps taken
	Pruned   int64 // branches skipped
	Leaves   int64 // completed orderings reached
	Recorded int64 // completed orderings that improved the bound
}

func statsOf(s search.Stats) Stats {
	return Stats(s)
}

// Result is the outcome of Search or Greedy.
type Result struct {
	Mode      Mode
	Items     int
	Frontier  core.Frontier
	Threads   int
	TaskBound int
	Parallel  bool
	Tasks     int
	Stats     Stats
	Duration  time.Duration
}

// Search runs the branch-and-bound search and returns the frontier of
// non-dominated orderings.
//
// The dependency graph must list every item of the memory graph exactly once.
// Any failure aborts the whole search; no partial results are returned.
func Search(ctx context.Context, deps scheduler.DependencyGraph, graph scheduler.MemoryGraph, optFns ...Option) (*Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	log := opts.logger.WithItems(len(graph)).WithThreads(opts.threads)

	res, err := runSearch(ctx, deps, graph, opts, log)
	err = translateError(err)
	if err != nil {
		opts.metricsCollector.RecordSearch(0, 0, err)
		log.LogSearch(ctx, nil, err)
		return nil, err
	}
	opts.metricsCollector.RecordSearch(len(res.Frontier), res.Duration, nil)
	log.LogSearch(ctx, res, nil)
	return res, nil
}

func runSearch(ctx context.Context, deps scheduler.DependencyGraph, graph scheduler.MemoryGraph, opts options, log *Logger) (*Result, error) {
	sched, err := scheduler.New(deps, graph)
	if err != nil {
		return nil, err
	}

	mc := opts.metricsCollector
	rep, err := search.Run(ctx, sched.Sweep(), sched.Items(), search.Options{
		Threads:        opts.threads,
		TaskBound:      opts.taskBound,
		Logger:         log.Logger,
		ProgressPerSec: opts.progressPerSec,
		OnTask: func(r search.TaskReport) {
			mc.RecordTask(statsOf(r.Stats), r.Duration, r.Improved)
		},
	})
	if err != nil {
		return nil, err
	}
	if !rep.Parallel {
		mc.RecordTask(statsOf(rep.Stats), rep.Duration, len(rep.Results) > 0)
	}

	return &Result{
		Mode:      ModeSearch,
		Items:     rep.Items,
		Frontier:  rep.Frontier,
		Threads:   opts.threads,
		TaskBound: opts.taskBound,
		Parallel:  rep.Parallel,
		Tasks:     rep.Tasks,
		Stats:     statsOf(rep.Stats),
		Duration:  rep.Duration,
	}, nil
}

// Greedy measures every measurable item at every step and returns that single
// ordering as a one-entry frontier.
func Greedy(ctx context.Context, deps scheduler.DependencyGraph, graph scheduler.MemoryGraph, optFns ...Option) (*Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	log := opts.logger.WithItems(len(graph))

	start := time.Now()
	res, err := runGreedy(ctx, deps, graph)
	err = translateError(err)
	if err != nil {
		opts.metricsCollector.RecordSearch(0, time.Since(start), err)
		log.LogGreedy(ctx, nil, err)
		return nil, err
	}
	res.Duration = time.Since(start)
	opts.metricsCollector.RecordSearch(len(res.Frontier), res.Duration, nil)
	log.LogGreedy(ctx, res, nil)
	return res, nil
}

func runGreedy(ctx context.Context, deps scheduler.DependencyGraph, graph scheduler.MemoryGraph) (*Result, error) {
	sched, err := scheduler.New(deps, graph)
	if err != nil {
		return nil, err
	}

	var path core.Path
	for !sched.Time().AtLeaf() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		set := sched.Measurable()
		if len(set) == 0 {
			return nil, fmt.Errorf("%w: no measurable item after %d steps", scheduler.ErrInvalidGraph, len(path))
		}
		if err := sched.FocusInPlace(set); err != nil {
			return nil, err
		}
		path.Push(set)
	}

	return &Result{
		Mode:  ModeGreedy,
		Items: sched.Items(),
		Frontier: core.Frontier{{
			Length: len(path),
			Memory: sched.Space().MaxMemory(),
			Path:   path,
		}},
		Threads: 1,
	}, nil
}
