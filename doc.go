// Package pathsearch finds measurement orderings of a dependency-constrained
// computation that keep peak memory low.
//
// The input is a layered dependency graph (which items must be measured
// before which) and a memory graph (which items must be initialised before an
// item can be measured). An ordering measures a non-empty set of measurable
// items per step; its length is the number of steps and its memory is the
// largest number of items held at once.
//
// # Quick Start
//
//	res, err := pathsearch.Search(ctx, deps, graph,
//	    pathsearch.WithThreads(8),
//	    pathsearch.WithTaskBound(10000),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, r := range res.Frontier {
//	    fmt.Println(r.Length, r.Memory, r.Path)
//	}
//
// Search returns the Pareto frontier: for every reported length no shorter
// ordering uses as little memory, and memory strictly decreases as length
// grows.
//
// # Threads
//
// Below three threads the search runs on the calling goroutine. From three
// threads on, one goroutine merges task results and the others search the
// first-layer subtrees of the tree, at most TaskBound of them as separate
// tasks and the rest as one catch-all task.
//
// # Greedy
//
// Greedy measures everything measurable at every step and reports that single
// ordering. It is the shortest ordering there is, not necessarily the
// leanest.
package pathsearch
