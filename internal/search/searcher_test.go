package search

import (
	"context"
	"testing"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/scheduler"
	"github.com/QSI-BAQS/pathsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain: items 0 and 1 are free, 2 depends on 0; memory edges 0-1 and 1-2.
var chain = testutil.Instance{
	Deps: scheduler.DependencyGraph{
		{{Item: 0}, {Item: 1}},
		{{Item: 2, Deps: []int{0}}},
	},
	Graph: scheduler.MemoryGraph{{1}, {0, 2}, {1}},
}

func sweep(t *testing.T, in testutil.Instance) *scheduler.Sweep {
	t.Helper()
	s, err := in.Scheduler()
	require.NoError(t, err)
	return s.Sweep()
}

func TestSearcher_Chain(t *testing.T) {
	out, err := NewSearcher(sweep(t, chain), nil, core.NewBound(3)).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Results, 1)
	r := out.Results[2]
	assert.Equal(t, 2, r.Length)
	assert.Equal(t, 2, r.Memory)
	assert.Equal(t, core.Path{{0}, {1, 2}}, r.Path)

	assert.Equal(t, core.Bound{4, 4, 2, 2}, out.Bound)
	assert.Equal(t, Stats{Forward: 7, Backward: 5, Pruned: 3, Leaves: 2, Recorded: 2}, out.Stats)
}

func TestSearcher_SkipsPrunedSeed(t *testing.T) {
	root, err := chain.Scheduler()
	require.NoError(t, err)
	child, err := root.Focus(core.MeasurableSet{1})
	require.NoError(t, err)

	bound := core.Bound{4, 4, 2, 2}
	out, err := NewSearcher(child.Sweep(), core.Path{{1}}, bound).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Results)
	assert.Equal(t, Stats{Pruned: 1}, out.Stats)
	assert.Equal(t, core.Bound{4, 4, 2, 2}, out.Bound)
}

func TestSearcher_SeededTask(t *testing.T) {
	root, err := chain.Scheduler()
	require.NoError(t, err)
	child, err := root.Focus(core.MeasurableSet{0})
	require.NoError(t, err)

	out, err := NewSearcher(child.Sweep(), core.Path{{0}}, core.NewBound(3)).Run(context.Background())
	require.NoError(t, err)

	// lengths count the seed
	require.Contains(t, out.Results, 2)
	assert.Equal(t, core.Path{{0}, {1, 2}}, out.Results[2].Path)
	assert.Equal(t, 2, out.Results[2].Memory)
}

func TestSearcher_EmptyInstance(t *testing.T) {
	out, err := NewSearcher(sweep(t, testutil.Instance{}), nil, core.NewBound(0)).Run(context.Background())
	require.NoError(t, err)

	require.Contains(t, out.Results, 0)
	assert.Equal(t, 0, out.Results[0].Memory)
	assert.Empty(t, out.Results[0].Path)
}

func TestSearcher_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSearcher(sweep(t, chain), nil, core.NewBound(3)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearcher_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 25 {
		in := rng.Instance(testutil.InstanceConfig{Items: 6, Layers: 3, MaxDeps: 2, EdgeProb: 0.4})
		want, err := testutil.ReferenceFrontier(in)
		require.NoError(t, err)

		out, err := NewSearcher(sweep(t, in), nil, core.NewBound(in.Items())).Run(context.Background())
		require.NoError(t, err)

		got := Pareto(out.Results, in.Items())
		assert.Equal(t, want, got.Pairs())
		for _, r := range got {
			assert.Len(t, r.Path, r.Length)
			mem, err := testutil.ReplayPath(in, r.Path)
			require.NoError(t, err)
			assert.Equal(t, r.Memory, mem)
		}
	}
}

func TestStats_Add(t *testing.T) {
	a := Stats{Forward: 1, Backward: 2, Pruned: 3, Leaves: 4, Recorded: 5}
	assert.Equal(t, Stats{Forward: 2, Backward: 4, Pruned: 6, Leaves: 8, Recorded: 10}, a.Add(a))
}
