package core

import (
	"maps"
	"slices"
)

// Result is a completed ordering together with its length and peak memory.
type Result struct {
	Length int
	Memory int
	Path   Path
}

// ResultMap maps a path length to the best completed path of that length.
type ResultMap map[int]Result

// Offer stores r unless an entry of the same length with lower or equal
// memory already exists. It reports whether r was stored.
func (m ResultMap) Offer(r Result) bool {
	if cur, ok := m[r.Length]; ok && cur.Memory <= r.Memory {
		return false
	}
	m[r.Length] = r
	return true
}

// Lengths returns the recorded lengths in ascending order.
func (m ResultMap) Lengths() []int {
	return slices.Sorted(maps.Keys(m))
}

// Frontier is a Pareto frontier ordered by ascending length with strictly
// decreasing memory.
type Frontier []Result

// Pair is a (length, memory) point of a frontier.
type Pair struct {
	Length int
	Memory int
}

// Pairs returns the (length, memory) points of the frontier, dropping paths.
func (f Frontier) Pairs() []Pair {
	out := make([]Pair, len(f))
	for i, r := range f {
		out[i] = Pair{Length: r.Length, Memory: r.Memory}
	}
	return out
}
