package search

import (
	"fmt"
	"testing"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLeaves(src core.StepSource) int {
	n := 0
	for step, ok := src.Next(); ok; step, ok = src.Next() {
		if step.Leaf {
			n++
		}
	}
	return n
}

func TestSplitter_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "none", limit: 0, want: 0},
		{name: "one", limit: 1, want: 1},
		{name: "first layer", limit: 100, want: 3},
		{name: "unlimited", limit: -1, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := NewSplitter(sweep(t, chain), tt.limit)
			var tasks []Task
			for task, ok := split.Next(); ok; task, ok = split.Next() {
				tasks = append(tasks, task)
			}
			require.Len(t, tasks, tt.want)
			assert.Equal(t, tt.want, split.Issued())

			for i, task := range tasks {
				assert.Equal(t, i, task.ID)
				assert.Len(t, task.Seed, 1)
				assert.False(t, task.Remainder)
			}

			rest := split.Remainder()
			assert.True(t, rest.Remainder)
			assert.Empty(t, rest.Seed)
			assert.Equal(t, tt.want, rest.ID)

			// exhausted splitters stay exhausted
			_, ok := split.Next()
			assert.False(t, ok)
		})
	}
}

func TestSplitter_DeterministicOrder(t *testing.T) {
	split := NewSplitter(sweep(t, chain), -1)
	var seeds []core.Path
	for task, ok := split.Next(); ok; task, ok = split.Next() {
		seeds = append(seeds, task.Seed)
	}
	assert.Equal(t, []core.Path{{{0, 1}}, {{0}}, {{1}}}, seeds)
}

// leaves lists every ordering below src as "path/memory", with seed
// prepended to the paths the source yields.
func leaves(seed core.Path, src core.StepSource) []string {
	path := seed.Clone()
	var out []string
	for step, ok := src.Next(); ok; step, ok = src.Next() {
		switch step.Kind {
		case core.Forward:
			path.Push(step.Set)
		case core.Backward:
			if step.Leaf {
				out = append(out, fmt.Sprintf("%v/%d", path, step.Memory))
			}
			path.Pop()
		}
	}
	return out
}

func TestSplitter_CoversEveryLeafOnce(t *testing.T) {
	rng := testutil.NewRNG(99)
	for range 10 {
		in := rng.Instance(testutil.InstanceConfig{Items: 6, Layers: 2, MaxDeps: 2, EdgeProb: 0.3})
		want := leaves(nil, sweep(t, in))
		require.NotEmpty(t, want)
		assert.Len(t, want, countLeaves(sweep(t, in)))

		for _, limit := range []int{0, 1, 2, 5, -1} {
			split := NewSplitter(sweep(t, in), limit)
			var got []string
			for task, ok := split.Next(); ok; task, ok = split.Next() {
				got = append(got, leaves(task.Seed, task.Source)...)
			}
			rest := split.Remainder()
			got = append(got, leaves(rest.Seed, rest.Source)...)
			assert.ElementsMatch(t, want, got, "limit %d", limit)
		}
	}
}
