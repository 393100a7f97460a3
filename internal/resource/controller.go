package resource

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// Workers is the maximum number of search tasks running at once.
	// If 0, defaults to 1.
	Workers int64

	// ProgressPerSec is the maximum rate of progress events let through.
	// If 0, every event is allowed.
	ProgressPerSec float64
}

// Controller governs worker slots and the rate of progress events of one search.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted
	active  atomic.Int64
	peak    atomic.Int64

	progress *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.Workers),
	}

	if cfg.ProgressPerSec > 0 {
		c.progress = rate.NewLimiter(rate.Limit(cfg.ProgressPerSec), 1)
	}

	return c
}

// Workers returns the number of worker slots.
func (c *Controller) Workers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.Workers
}

// AcquireWorker reserves a worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	c.track()
	return nil
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.workers.TryAcquire(1) {
		return false
	}
	c.track()
	return true
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.workers.Release(1)
}

func (c *Controller) track() {
	n := c.active.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			return
		}
	}
}

// Active returns the number of worker slots currently held.
func (c *Controller) Active() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// PeakActive returns the highest number of slots held at once.
func (c *Controller) PeakActive() int64 {
	if c == nil {
		return 0
	}
	return c.peak.Load()
}

// AllowProgress reports whether a progress event may be emitted now.
// Events beyond the configured rate are dropped, never delayed.
func (c *Controller) AllowProgress() bool {
	if c == nil || c.progress == nil {
		return true
	}
	return c.progress.AllowN(time.Now(), 1)
}
