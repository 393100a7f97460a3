package pathsearch

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    tasks  prometheus.Counter
//	    pruned prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordTask(stats Stats, duration time.Duration, improved bool) {
//	    p.tasks.Inc()
//	    p.pruned.Add(float64(stats.Pruned))
//	}
type MetricsCollector interface {
	// RecordTask is called after each search task was merged.
	// improved reports whether the task tightened the global bound.
	RecordTask(stats Stats, duration time.Duration, improved bool)

	// RecordSearch is called after each Search or Greedy call.
	// frontier is the number of reported orderings, err is nil if successful.
	RecordSearch(frontier int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTask(Stats, time.Duration, bool)  {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TaskCount      atomic.Int64
	TaskImproved   atomic.Int64
	TaskTotalNanos atomic.Int64
	_              cpu.CacheLinePad
	Forward        atomic.Int64
	Pruned         atomic.Int64
	Leaves         atomic.Int64
	_              cpu.CacheLinePad
	SearchCount    atomic.Int64
	SearchErrors   atomic.Int64
	SearchNanos    atomic.Int64
	FrontierSize   atomic.Int64
}

// RecordTask implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTask(stats Stats, duration time.Duration, improved bool) {
	b.TaskCount.Add(1)
	b.TaskTotalNanos.Add(duration.Nanoseconds())
	if improved {
		b.TaskImproved.Add(1)
	}
	b.Forward.Add(stats.Forward)
	b.Pruned.Add(stats.Pruned)
	b.Leaves.Add(stats.Leaves)
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(frontier int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.FrontierSize.Store(int64(frontier))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TaskCount:      b.TaskCount.Load(),
		TaskImproved:   b.TaskImproved.Load(),
		TaskAvgNanos:   b.getAvgTaskNanos(),
		Forward:        b.Forward.Load(),
		Pruned:         b.Pruned.Load(),
		Leaves:         b.Leaves.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		FrontierSize:   b.FrontierSize.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTaskNanos() int64 {
	count := b.TaskCount.Load()
	if count == 0 {
		return 0
	}
	return b.TaskTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TaskCount      int64
	TaskImproved   int64
	TaskAvgNanos   int64
	Forward        int64
	Pruned         int64
	Leaves         int64
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	FrontierSize   int64
}
