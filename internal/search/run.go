package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/internal/resource"
	"golang.org/x/sync/errgroup"
)

// MinParallelThreads is the smallest thread count that runs tasks in
// parallel: one thread aggregates, the others search.
const MinParallelThreads = 3

// Options configures Run.
type Options struct {
	// Threads is the configured thread count. Below MinParallelThreads the
	// search runs sequentially.
	Threads int

	// TaskBound limits the number of explicit first-layer tasks. Zero means
	// a single catch-all task; negative means no limit.
	TaskBound int

	// Logger receives task and progress logs. nil discards them.
	Logger *slog.Logger

	// ProgressPerSec limits the rate of "task finished" logs at info level.
	// Zero logs every task.
	ProgressPerSec float64

	// OnTask, if set, is called by the aggregator after every merged task.
	OnTask func(TaskReport)
}

// Report is the outcome of a whole search.
type Report struct {
	Items      int
	Bound      core.Bound
	Results    core.ResultMap
	Frontier   core.Frontier
	Stats      Stats
	Tasks      int
	Parallel   bool
	PeakActive int64
	Duration   time.Duration
}

// Run searches the tree below root for the frontier of orderings over items.
// Errors abort the search; no partial results are returned.
func Run(ctx context.Context, root core.SplittableSource, items int, opts Options) (Report, error) {
	if opts.Threads <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidThreads, opts.Threads)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	var (
		rep Report
		err error
	)
	if opts.Threads < MinParallelThreads {
		rep, err = runSequential(ctx, root, items, opts.Logger)
	} else {
		rep, err = runParallel(ctx, root, items, opts)
	}
	if err != nil {
		return Report{}, err
	}
	rep.Items = items
	rep.Frontier = Pareto(rep.Results, items)
	rep.Duration = time.Since(start)
	return rep, nil
}

func runSequential(ctx context.Context, root core.StepSource, items int, log *slog.Logger) (Report, error) {
	log.Debug("task started", "task", 0, "remainder", true)
	begin := time.Now()
	out, err := NewSearcher(root, nil, core.NewBound(items)).Run(ctx)
	if err != nil {
		return Report{}, err
	}
	log.Info("task finished",
		"task", 0,
		"remainder", true,
		"leaves", out.Stats.Leaves,
		"pruned", out.Stats.Pruned,
		"improved", len(out.Results) > 0,
		"duration", time.Since(begin),
	)
	return Report{Bound: out.Bound, Results: out.Results, Stats: out.Stats, Tasks: 1}, nil
}

func runParallel(ctx context.Context, root core.SplittableSource, items int, opts Options) (Report, error) {
	log := opts.Logger
	rc := resource.NewController(resource.Config{
		Workers:        int64(opts.Threads - 1),
		ProgressPerSec: opts.ProgressPerSec,
	})

	agg := NewAggregator(items)
	ch := make(chan message, opts.Threads)
	aggDone := make(chan struct{})
	go func() {
		defer close(aggDone)
		agg.run(ch, func(r TaskReport) {
			if rc.AllowProgress() {
				log.Info("task finished",
					"task", r.ID,
					"remainder", r.Remainder,
					"leaves", r.Stats.Leaves,
					"pruned", r.Stats.Pruned,
					"improved", r.Improved,
					"duration", r.Duration,
				)
			}
			if opts.OnTask != nil {
				opts.OnTask(r)
			}
		})
	}()

	g, gctx := errgroup.WithContext(ctx)
	dispatch := func(task Task) error {
		if err := rc.AcquireWorker(gctx); err != nil {
			return err
		}
		g.Go(func() (err error) {
			defer rc.ReleaseWorker()
			defer func() {
				if r := recover(); r != nil {
					err = &TaskError{ID: task.ID, Seed: task.Seed, Err: fmt.Errorf("%w: %v", ErrWorkerPanic, r)}
				}
			}()

			log.Debug("task started", "task", task.ID, "seed", task.Seed, "remainder", task.Remainder)
			begin := time.Now()
			out, err := NewSearcher(task.Source, task.Seed, agg.Snapshot()).Run(gctx)
			if err != nil {
				return &TaskError{ID: task.ID, Seed: task.Seed, Err: err}
			}
			select {
			case ch <- message{task: task, outcome: out, duration: time.Since(begin)}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		return nil
	}

	split := NewSplitter(root, opts.TaskBound)
	var dispatchErr error
	for {
		task, ok := split.Next()
		if !ok {
			dispatchErr = dispatch(split.Remainder())
			break
		}
		if dispatchErr = dispatch(task); dispatchErr != nil {
			break
		}
	}

	err := g.Wait()
	close(ch)
	<-aggDone
	if err == nil {
		err = dispatchErr
	}
	if err != nil {
		return Report{}, err
	}

	bound, results := agg.State()
	stats, tasks := agg.Stats()
	log.Debug("tasks dispatched", "explicit", split.Issued(), "merged", tasks)
	return Report{
		Bound:      bound,
		Results:    results,
		Stats:      stats,
		Tasks:      tasks,
		Parallel:   true,
		PeakActive: rc.PeakActive(),
	}, nil
}
