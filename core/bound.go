package core

// Bound is the pruning array of a search.
//
// Entry i holds the lowest peak memory proven achievable by a completed path
// of length at most i. Entries only ever decrease, and the array is
// non-increasing in i. A fresh Bound for n items has n+1 entries, all set to
// the sentinel n+1, which no ordering can reach.
type Bound []int

// NewBound returns a fresh Bound for the given number of items.
func NewBound(items int) Bound {
	b := make(Bound, items+1)
	for i := range b {
		b[i] = items + 1
	}
	return b
}

// Unset returns the sentinel value of a fresh entry.
func (b Bound) Unset() int {
	return len(b)
}

// At returns the bound for paths of the given length. No ordering is longer
// than the item count, so lengths past the end report 0.
func (b Bound) At(length int) int {
	if length < 0 || length >= len(b) {
		return 0
	}
	return b[length]
}

// Record registers a completed path of the given length and memory. It sets
// the entry for length and tightens every longer entry to at most memory. It
// reports false, leaving the bound untouched, unless memory strictly improves
// the entry.
func (b Bound) Record(length, memory int) bool {
	if length < 0 || length >= len(b) || memory >= b[length] {
		return false
	}
	b[length] = memory
	for j := length + 1; j < len(b); j++ {
		if memory < b[j] {
			b[j] = memory
		}
	}
	return true
}

// Clone returns an independent copy.
func (b Bound) Clone() Bound {
	out := make(Bound, len(b))
	copy(out, b)
	return out
}
