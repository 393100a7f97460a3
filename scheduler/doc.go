// Package scheduler provides the step source driven by the path search: a
// depth-first sweep over every ordering in which a set of items can be
// measured.
//
// Two trackers make up a Scheduler:
//
//   - PathGenerator (time) knows which items are measurable, i.e. every item
//     they depend on has been measured, and which are still waiting.
//   - Graph (space) knows which items currently occupy memory. Measuring an
//     item requires the item and all of its neighbours in the memory graph to
//     be initialised; a measured item frees its slot.
//
// At every node of the tree any non-empty subset of the measurable items may
// be measured next. A Sweep enumerates these moves depth first, yielding
// core.Step values, and reports the peak memory of every completed ordering
// when it leaves the corresponding leaf.
//
//	sched, err := scheduler.New(deps, graph)
//	if err != nil {
//	    return err
//	}
//	sweep := sched.Sweep()
//	for step, ok := sweep.Next(); ok; step, ok = sweep.Next() {
//	    // ...
//	}
package scheduler
