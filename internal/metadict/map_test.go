package metadict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetKeepsPosition(t *testing.T) {
	m := FromPairs("a", 1, "b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMap_Delete(t *testing.T) {
	m := FromPairs("a", 1, "b", 2, "c", 3)
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
}

func TestMap_GetPath(t *testing.T) {
	m := stationRecord()

	v, ok := m.GetPath(Path{"station", "channel", "sample_rate"})
	require.True(t, ok)
	assert.Equal(t, int64(100), v)

	_, ok = m.GetPath(Path{"station", "id", "x"})
	assert.False(t, ok)

	_, ok = m.GetPath(nil)
	assert.False(t, ok)
}

func TestMap_Clone(t *testing.T) {
	m := FromPairs("a", FromPairs("b", []any{1, 2}))
	c := m.Clone()

	c.Branch("a").Set("b", "x")

	v, _ := m.GetPath(Path{"a", "b"})
	assert.Equal(t, []any{1, 2}, v)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Map
		equal bool
	}{
		{
			name:  "order insensitive",
			a:     FromPairs("a", 1, "b", FromPairs("c", 2, "d", 3)),
			b:     FromPairs("b", FromPairs("d", 3, "c", 2), "a", 1),
			equal: true,
		},
		{
			name:  "different values",
			a:     FromPairs("a", 1),
			b:     FromPairs("a", 2),
			equal: false,
		},
		{
			name:  "sequence order matters",
			a:     FromPairs("a", []any{1, 2}),
			b:     FromPairs("a", []any{2, 1}),
			equal: false,
		},
		{
			name:  "typed slice equals any slice",
			a:     FromPairs("a", []string{"x", "y"}),
			b:     FromPairs("a", []any{"x", "y"}),
			equal: true,
		},
		{
			name:  "leaf versus branch",
			a:     FromPairs("a", "x"),
			b:     FromPairs("a", FromPairs("x", 1)),
			equal: false,
		},
		{
			name:  "nil and empty",
			a:     nil,
			b:     New(),
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMap, KindOf(New()))
	assert.Equal(t, KindMap, KindOf(map[string]any{}))
	assert.Equal(t, KindSequence, KindOf([]any{}))
	assert.Equal(t, KindSequence, KindOf([]float64{1}))
	assert.Equal(t, KindScalar, KindOf("x"))
	assert.Equal(t, KindScalar, KindOf(nil))
	assert.Equal(t, KindScalar, KindOf([]byte("x")))

	assert.Equal(t, "KindSequence", KindSequence.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestSplitPath(t *testing.T) {
	p, err := SplitPath("station.channel.sample_rate", ".")
	require.NoError(t, err)
	assert.Equal(t, Path{"station", "channel", "sample_rate"}, p)

	_, err = SplitPath("", ".")
	require.Error(t, err)

	_, err = SplitPath("a.", ".")
	require.Error(t, err)

	assert.True(t, p.HasPrefix(Path{"station", "channel"}))
	assert.False(t, p.HasPrefix(Path{"channel"}))
}
