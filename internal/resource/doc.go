// Package resource implements the Controller that governs the resources of
// one parallel search.
//
// The Controller manages two resource types:
//
//   - Workers: bound the number of search tasks running at once (weighted semaphore)
//   - Progress: rate-limit progress events so that runs with thousands of
//     tasks do not flood the log (token bucket)
//
// # Worker Slots
//
//	rc := resource.NewController(resource.Config{
//	    Workers: 7,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// Active and PeakActive report current and peak slot usage.
//
// # Progress Events
//
// AllowProgress never blocks. Events past the configured rate are dropped:
//
//	if rc.AllowProgress() {
//	    logger.Info("task finished", "done", done, "total", total)
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
