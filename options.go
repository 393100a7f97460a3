package pathsearch

import "log/slog"

const (
	// DefaultThreads runs the search on the calling goroutine.
	DefaultThreads = 1

	// DefaultTaskBound is the default limit of explicit first-layer tasks.
	DefaultTaskBound = 10000
)

type options struct {
	threads          int
	taskBound        int
	logger           *Logger
	metricsCollector MetricsCollector
	progressPerSec   float64
}

func defaultOptions() options {
	return options{
		threads:          DefaultThreads,
		taskBound:        DefaultTaskBound,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Search and Greedy.
type Option func(*options)

// WithThreads sets the thread count.
//
// Below three threads the search runs sequentially. With n >= 3 threads one
// goroutine aggregates results and n-1 goroutines search.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithTaskBound limits how many first-layer subtrees are split off as
// separate tasks. Whatever is left runs as one final task, so the bound never
// changes the result. 0 disables splitting; a negative bound splits the whole
// first layer.
func WithTaskBound(n int) Option {
	return func(o *options) {
		o.taskBound = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pathsearch.BasicMetricsCollector{}
//	res, _ := pathsearch.Search(ctx, deps, graph, pathsearch.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Tasks: %d, Pruned: %d\n", stats.TaskCount, stats.Pruned)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pathsearch.NewJSONLogger(slog.LevelInfo)
//	res, _ := pathsearch.Search(ctx, deps, graph, pathsearch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgressRate limits "task finished" logs to perSec events per second.
// 0 logs every task.
func WithProgressRate(perSec float64) Option {
	return func(o *options) {
		o.progressPerSec = perSec
	}
}
