// Package core defines the types shared by the path search engine and the
// step sources it drives.
//
// A search walks an implicit tree of measurement orderings. Every edge of the
// tree commits one MeasurableSet; a root-to-leaf walk is a Path. The engine
// tracks, per path length, the lowest peak memory proven achievable (Bound)
// and the best completed path of every length (ResultMap). The final answer
// is a Frontier: the Pareto-optimal (length, memory) pairs.
package core
