package pathsearch

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with pathsearch-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCircuit adds a circuit name field to the logger.
func (l *Logger) WithCircuit(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("circuit", name),
	}
}

// WithThreads adds a thread count field to the logger.
func (l *Logger) WithThreads(threads int) *Logger {
	return &Logger{
		Logger: l.Logger.With("threads", threads),
	}
}

// WithItems adds an item count field to the logger.
func (l *Logger) WithItems(items int) *Logger {
	return &Logger{
		Logger: l.Logger.With("items", items),
	}
}

// LogSearch logs a branch-and-bound search.
func (l *Logger) LogSearch(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "search completed",
		"frontier", len(res.Frontier),
		"tasks", res.Tasks,
		"parallel", res.Parallel,
		"leaves", res.Stats.Leaves,
		"pruned", res.Stats.Pruned,
		"duration", res.Duration.Round(time.Millisecond),
	)
}

// LogGreedy logs a greedy run.
func (l *Logger) LogGreedy(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "greedy run failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "greedy run completed",
		"length", res.Frontier[0].Length,
		"memory", res.Frontier[0].Memory,
	)
}
