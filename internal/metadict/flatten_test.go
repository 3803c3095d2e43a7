package metadict

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stationRecord() *Map {
	return FromPairs(
		"station", FromPairs(
			"id", "mt001",
			"location", FromPairs(
				"latitude", 40.5,
				"longitude", -116.25,
				"elevation", int64(1220),
			),
			"channel", FromPairs(
				"sample_rate", int64(100),
				"component", "ex",
				"measured", true,
			),
		),
	)
}

func TestFlatten_Basic(t *testing.T) {
	in := FromPairs("a", FromPairs("b", 1, "c", FromPairs("d", 2)))

	out, err := Flatten(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.b", "a.c.d"}, out.Keys())

	v, _ := out.Get("a.b")
	assert.Equal(t, 1, v)

	v, _ = out.Get("a.c.d")
	assert.Equal(t, 2, v)
}

func TestFlatten_Empty(t *testing.T) {
	out, err := Flatten(New())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	out, err = Flatten(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestFlatten_PrefixAndSeparator(t *testing.T) {
	in := FromPairs("run", FromPairs("id", "a", "sample_rate", 8.0))

	out, err := Flatten(in, WithPrefix("station"), WithSeparator("/"))
	require.NoError(t, err)

	assert.Equal(t, []string{"station/run/id", "station/run/sample_rate"}, out.Keys())
}

func TestFlatten_GoMapBranch(t *testing.T) {
	in := FromPairs("survey", map[string]any{"name": "x", "acquired_by": map[string]any{"author": "y"}})

	out, err := Flatten(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"survey.acquired_by.author", "survey.name"}, out.Keys())
}

func TestFlatten_SequencesAreLeaves(t *testing.T) {
	in := FromPairs("run", FromPairs("channels", []any{"ex", "ey"}))

	out, err := Flatten(in)
	require.NoError(t, err)

	v, ok := out.Get("run.channels")
	require.True(t, ok)
	assert.Equal(t, []any{"ex", "ey"}, v)
}

func TestFlatten_IdempotentOnFlatInput(t *testing.T) {
	flat := FromPairs("a.b", 1, "a.c.d", 2, "e", "x")

	out, err := Flatten(flat)
	require.NoError(t, err)

	assert.True(t, Equal(flat, out), spew.Sdump(out))
	assert.Equal(t, flat.Keys(), out.Keys())
}

func TestFlatten_StrictKeys(t *testing.T) {
	in := FromPairs("a", FromPairs("b.c", 1))

	_, err := Flatten(in, WithStrictKeys())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousKey))

	out, err := Flatten(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b.c"}, out.Keys())
}

func TestStructure_Basic(t *testing.T) {
	flat := FromPairs("a.b", 1, "a.c.d", 2)

	out, err := Structure(flat)
	require.NoError(t, err)

	expected := FromPairs("a", FromPairs("b", 1, "c", FromPairs("d", 2)))
	assert.True(t, Equal(expected, out), spew.Sdump(out))
	assert.Equal(t, expected, out)
}

func TestStructure_FirstInsertionOrder(t *testing.T) {
	flat := FromPairs("b.x", 1, "a.y", 2, "b.z", 3)

	out, err := Structure(flat)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, out.Keys())
	assert.Equal(t, []string{"x", "z"}, out.Branch("b").Keys())
}

func TestStructure_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		flat *Map
		path Path
	}{
		{
			name: "leaf then branch",
			flat: FromPairs("a", 1, "a.b", 2),
			path: Path{"a"},
		},
		{
			name: "branch then leaf",
			flat: FromPairs("a.b", 2, "a", 1),
			path: Path{"a"},
		},
		{
			name: "deep leaf then branch",
			flat: FromPairs("s.c", "x", "s.c.r", 1),
			path: Path{"s", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Structure(tt.flat)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrStructuralConflict)

			var ce *ConflictError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.path, ce.Path)
		})
	}
}

func TestStructure_EmptySegment(t *testing.T) {
	_, err := Structure(FromPairs("a..b", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty segment")
}

func TestStructure_DoesNotAliasInput(t *testing.T) {
	seq := []any{"ex"}
	flat := FromPairs("run.channels", seq)

	out, err := Structure(flat)
	require.NoError(t, err)

	v, _ := out.GetPath(Path{"run", "channels"})
	v.([]any)[0] = "changed"

	assert.Equal(t, "ex", seq[0])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   *Map
		sep  string
	}{
		{name: "station", in: stationRecord(), sep: "."},
		{name: "slash separator", in: stationRecord(), sep: "/"},
		{name: "empty", in: New(), sep: "."},
		{name: "empty branch", in: FromPairs("a", New(), "b", 1), sep: "."},
		{name: "nil leaf", in: FromPairs("a", FromPairs("b", nil)), sep: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := Flatten(tt.in, WithSeparator(tt.sep))
			require.NoError(t, err)

			back, err := Structure(flat, WithSeparator(tt.sep))
			require.NoError(t, err)

			assert.True(t, Equal(tt.in, back), "in:\n%s\nback:\n%s", spew.Sdump(tt.in), spew.Sdump(back))
		})
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0

	err := Walk(stationRecord(), func(e Entry) error {
		visited++
		if e.Path.String() == "station.location.latitude" {
			return stop
		}

		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}
