package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QSI-BAQS/pathsearch/codec"
	"github.com/QSI-BAQS/pathsearch/core"
)

func TestPaths_WireFormat(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(chainAnalysis())
			require.NoError(t, err)
			assert.Contains(t, string(data), `"paths":[[2,[2,[[0],[1,2]]]]]`)
			assert.Contains(t, string(data), `"graph":[[1],[0,2],[1]]`)
			assert.Contains(t, string(data), `"dependencies":[[[0,[]],[1,[]]],[[2,[0]]]]`)
			assert.NotContains(t, string(data), `"input_map"`)
		})
	}
}

func TestPaths_Unmarshal(t *testing.T) {
	var p Paths
	require.NoError(t, codec.JSON{}.Unmarshal([]byte(`[[4,[3,[[0,1],[2],[3]]]],[6,[2,[[0],[1],[2],[3]]]]]`), &p))

	want := core.Frontier{
		{Length: 4, Memory: 3, Path: core.Path{{0, 1}, {2}, {3}}},
		{Length: 6, Memory: 2, Path: core.Path{{0}, {1}, {2}, {3}}},
	}
	assert.Equal(t, want, (&Analysis{Paths: p}).Frontier())

	for _, bad := range []string{`[[1]]`, `[[1,[2]]]`, `[["x",[2,[]]]]`, `{}`} {
		assert.Error(t, codec.JSON{}.Unmarshal([]byte(bad), &p), bad)
	}
}

func TestPaths_Empty(t *testing.T) {
	data, err := codec.JSON{}.Marshal(&Analysis{Paths: Paths{{Length: 0, Memory: 0}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"paths":[[0,[0,[]]]]`)

	data, err = codec.JSON{}.Marshal(&Analysis{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"paths":[]`)
}
