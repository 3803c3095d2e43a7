package metadict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestJSON_KeepsOrder(t *testing.T) {
	data := []byte(`{"z": 1, "a": {"y": 2.5, "b": [true, "x", null]}, "m": "s"}`)

	var m Map
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, []string{"y", "b"}, m.Branch("a").Keys())

	v, _ := m.Get("z")
	assert.Equal(t, int64(1), v)

	v, _ = m.GetPath(Path{"a", "y"})
	assert.Equal(t, 2.5, v)

	v, _ = m.GetPath(Path{"a", "b"})
	assert.Equal(t, []any{true, "x", nil}, v)

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))
	assert.Equal(t, `{"z":1,"a":{"y":2.5,"b":[true,"x",null]},"m":"s"}`, string(out))
}

func TestJSON_RejectsNonObject(t *testing.T) {
	var m Map
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
}

func TestJSON_RejectsTrailingData(t *testing.T) {
	var m Map
	require.Error(t, m.UnmarshalJSON([]byte(`{"a":1} {"b":2}`)))
	require.Error(t, m.UnmarshalJSON([]byte(`{"a":1} x`)))

	require.NoError(t, m.UnmarshalJSON([]byte("{\"a\":1}\n  ")))
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestYAML_KeepsDatesAsWritten(t *testing.T) {
	var m Map
	require.NoError(t, yaml.Unmarshal([]byte("station:\n  start: 2020-01-01\n  end: 2020-01-02T10:00:00Z\n  runs: [2021-06-10]\n"), &m))

	start, ok := m.GetPath(Path{"station", "start"})
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", start)

	end, _ := m.GetPath(Path{"station", "end"})
	assert.Equal(t, "2020-01-02T10:00:00Z", end)

	runs, _ := m.GetPath(Path{"station", "runs"})
	assert.Equal(t, []any{"2021-06-10"}, runs)

	flat, err := Flatten(&m)
	require.NoError(t, err)

	data, err := flat.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"station.start":"2020-01-01","station.end":"2020-01-02T10:00:00Z","station.runs":["2021-06-10"]}`, string(data))
}

func TestYAML_KeepsOrder(t *testing.T) {
	data := []byte(`
station:
  id: mt001
  channel:
    sample_rate: 100
    component: ex
  runs: [a, b]
`)

	var m Map
	require.NoError(t, yaml.Unmarshal(data, &m))

	assert.Equal(t, []string{"id", "channel", "runs"}, m.Branch("station").Keys())

	v, _ := m.GetPath(Path{"station", "channel", "sample_rate"})
	assert.Equal(t, int64(100), v)

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)

	var back Map
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, Equal(&m, &back))
	assert.Equal(t, m.Branch("station").Keys(), back.Branch("station").Keys())
}

func TestMsgpack_RoundTrip(t *testing.T) {
	m := FromPairs(
		"station", FromPairs(
			"id", "mt001",
			"elevation", int64(1220),
			"latitude", 40.5,
			"active", true,
			"runs", []any{"a", int64(2)},
		),
		"empty", nil,
	)

	data, err := msgpack.Marshal(m)
	require.NoError(t, err)

	var back Map
	require.NoError(t, msgpack.Unmarshal(data, &back))

	assert.Equal(t, []string{"station", "empty"}, back.Keys())
	assert.Equal(t, []string{"id", "elevation", "latitude", "active", "runs"}, back.Branch("station").Keys())
	assert.True(t, Equal(m, &back))
}
