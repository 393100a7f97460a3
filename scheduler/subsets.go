package scheduler

import "github.com/QSI-BAQS/pathsearch/core"

// subsets enumerates the non-empty subsets of a sorted item list, largest
// first and lexicographically within one size. Measuring everything at once
// comes first, which finds short orderings early.
type subsets struct {
	items []int
	idx   []int
	done  bool
}

func newSubsets(items []int) *subsets {
	p := &subsets{items: items}
	p.reset(len(items))
	return p
}

func (p *subsets) reset(size int) {
	if size == 0 {
		p.done = true
		p.idx = nil
		return
	}
	p.idx = make([]int, size)
	for i := range p.idx {
		p.idx[i] = i
	}
}

func (p *subsets) next() (core.MeasurableSet, bool) {
	if p.done {
		return nil, false
	}
	set := make(core.MeasurableSet, len(p.idx))
	for i, j := range p.idx {
		set[i] = p.items[j]
	}

	n, k := len(p.items), len(p.idx)
	i := k - 1
	for i >= 0 && p.idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		p.reset(k - 1)
	} else {
		p.idx[i]++
		for j := i + 1; j < k; j++ {
			p.idx[j] = p.idx[j-1] + 1
		}
	}
	return set, true
}
