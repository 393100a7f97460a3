package codec

import (
	"testing"

	"github.com/QSI-BAQS/pathsearch/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_AgreeOnDependencies(t *testing.T) {
	doc := []byte(`[[[0,[]],[1,[]]],[[2,[0,1]]]]`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var deps scheduler.DependencyGraph
			require.NoError(t, c.Unmarshal(doc, &deps))
			assert.Equal(t, scheduler.DependencyGraph{
				{{Item: 0, Deps: []int{}}, {Item: 1, Deps: []int{}}},
				{{Item: 2, Deps: []int{0, 1}}},
			}, deps)

			out, err := c.Marshal(deps)
			require.NoError(t, err)
			assert.JSONEq(t, string(doc), string(out))
		})
	}
}

func TestMustMarshal_Default(t *testing.T) {
	assert.JSONEq(t, `{"a":1}`, string(MustMarshal(nil, map[string]int{"a": 1})))
}
