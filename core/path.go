package core

import "slices"

// MeasurableSet is a sorted set of item indices committed in one step.
type MeasurableSet []int

// Clone returns an independent copy of the set.
func (s MeasurableSet) Clone() MeasurableSet {
	return slices.Clone(s)
}

// Path is an ordered sequence of measurable sets.
type Path []MeasurableSet

// Push appends set to the path.
func (p *Path) Push(set MeasurableSet) {
	*p = append(*p, set)
}

// Pop removes the last set. Popping an empty path is a no-op.
func (p *Path) Pop() {
	if n := len(*p); n > 0 {
		(*p)[n-1] = nil
		*p = (*p)[:n-1]
	}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = s.Clone()
	}
	return out
}

// Items returns the number of items measured along the path.
func (p Path) Items() int {
	n := 0
	for _, s := range p {
		n += len(s)
	}
	return n
}
