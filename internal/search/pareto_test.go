package search

import (
	"testing"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/stretchr/testify/assert"
)

func TestPareto(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		results []core.Result
		want    []core.Pair
	}{
		{
			name:  "dominated same length",
			items: 6,
			results: []core.Result{
				{Length: 4, Memory: 5},
				{Length: 4, Memory: 3},
				{Length: 6, Memory: 2},
			},
			want: []core.Pair{{Length: 4, Memory: 3}, {Length: 6, Memory: 2}},
		},
		{
			name:  "longer path must beat every shorter one",
			items: 6,
			results: []core.Result{
				{Length: 2, Memory: 4},
				{Length: 3, Memory: 5},
				{Length: 4, Memory: 4},
				{Length: 5, Memory: 1},
			},
			want: []core.Pair{{Length: 2, Memory: 4}, {Length: 5, Memory: 1}},
		},
		{
			name:  "empty",
			items: 3,
			want:  []core.Pair{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := make(core.ResultMap)
			for _, r := range tt.results {
				m.Offer(r)
			}
			got := Pareto(m, tt.items).Pairs()
			assert.Equal(t, tt.want, got)

			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].Length, got[i].Length)
				assert.Less(t, got[i].Memory, got[i-1].Memory)
			}
		})
	}
}

func TestPareto_KeepsPaths(t *testing.T) {
	a := core.Path{{0}, {1}, {2}, {3}}
	b := core.Path{{0}, {1}, {2}, {3}, {4}, {5}}
	m := core.ResultMap{
		4: {Length: 4, Memory: 3, Path: a},
		6: {Length: 6, Memory: 2, Path: b},
	}

	got := Pareto(m, 6)
	assert.Equal(t, core.Frontier{
		{Length: 4, Memory: 3, Path: a},
		{Length: 6, Memory: 2, Path: b},
	}, got)
}
