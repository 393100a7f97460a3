package search

import "github.com/QSI-BAQS/pathsearch/core"

// Pareto reduces results to the frontier of non-dominated orderings for the
// given number of items: ascending length, strictly decreasing memory. An
// entry is kept only if it beats every shorter entry kept before it.
func Pareto(results core.ResultMap, items int) core.Frontier {
	bound := core.NewBound(items)
	var out core.Frontier
	for _, length := range results.Lengths() {
		r := results[length]
		if bound.Record(length, r.Memory) {
			out = append(out, r)
		}
	}
	return out
}
