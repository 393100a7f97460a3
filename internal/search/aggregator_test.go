package search

import (
	"testing"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/stretchr/testify/assert"
)

func TestAggregator_Merge(t *testing.T) {
	agg := NewAggregator(4)

	a := core.Path{{0, 1}, {2, 3}}
	changed := agg.Merge(Outcome{
		Bound:   core.Bound{5, 5, 3, 3, 3},
		Results: core.ResultMap{2: {Length: 2, Memory: 3, Path: a}},
	})
	assert.True(t, changed)

	bound, results := agg.State()
	assert.Equal(t, core.Bound{5, 5, 3, 3, 3}, bound)
	assert.Equal(t, a, results[2].Path)

	// equal entries do not replace the global result
	b := core.Path{{0}, {1, 2, 3}}
	changed = agg.Merge(Outcome{
		Bound:   core.Bound{5, 5, 3, 3, 2},
		Results: core.ResultMap{2: {Length: 2, Memory: 3, Path: b}, 4: {Length: 4, Memory: 2, Path: b}},
	})
	assert.True(t, changed)

	bound, results = agg.State()
	assert.Equal(t, core.Bound{5, 5, 3, 3, 2}, bound)
	assert.Equal(t, a, results[2].Path)
	assert.Equal(t, b, results[4].Path)
	assert.NotContains(t, results, 3)
}

func TestAggregator_MergeIdempotent(t *testing.T) {
	agg := NewAggregator(4)
	msg := Outcome{
		Bound:   core.Bound{5, 5, 4, 2, 2},
		Results: core.ResultMap{3: {Length: 3, Memory: 2, Path: core.Path{{0}, {1}, {2, 3}}}},
	}

	assert.True(t, agg.Merge(msg))
	bound1, results1 := agg.State()
	bound1 = bound1.Clone()
	n := len(results1)

	assert.False(t, agg.Merge(msg))
	bound2, results2 := agg.State()
	assert.Equal(t, bound1, bound2)
	assert.Len(t, results2, n)
}

func TestAggregator_SnapshotIsPrivate(t *testing.T) {
	agg := NewAggregator(3)
	snap := agg.Snapshot()
	snap[0] = 0

	assert.Equal(t, core.NewBound(3), agg.Snapshot())
}

func TestAggregator_Run(t *testing.T) {
	agg := NewAggregator(2)
	ch := make(chan message, 2)
	ch <- message{task: Task{ID: 0}, outcome: Outcome{Bound: core.Bound{3, 2, 2}, Stats: Stats{Leaves: 1}}}
	ch <- message{task: Task{ID: 1, Remainder: true}, outcome: Outcome{Bound: core.Bound{3, 2, 2}, Stats: Stats{Leaves: 2}}}
	close(ch)

	var reports []TaskReport
	agg.run(ch, func(r TaskReport) { reports = append(reports, r) })

	stats, tasks := agg.Stats()
	assert.Equal(t, 2, tasks)
	assert.Equal(t, int64(3), stats.Leaves)

	assert.Len(t, reports, 2)
	assert.True(t, reports[0].Improved)
	assert.False(t, reports[1].Improved)
	assert.True(t, reports[1].Remainder)
	assert.Equal(t, core.Bound{3, 2, 2}, reports[1].Bound)
}
