// Package search implements the branch-and-bound engine over a tree of
// measurement orderings.
//
// A Searcher walks one core.StepSource depth first and prunes every branch
// whose peak memory already reaches the bound of the shortest ordering it
// could still complete. Run splits the first layer of the tree into tasks,
// searches them on a pool of workers, and funnels every task outcome through
// a single Aggregator that owns the global bound and result map. Pareto
// reduces the merged result map to the non-dominated frontier.
package search
