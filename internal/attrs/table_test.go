package attrs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mth5meta/internal/metadict"
)

func TestLoadFile(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "station.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7, table.Len())
	assert.Equal(t, "station.id", table.Names()[0])

	d, ok := table.Lookup("station.channel.sample_rate")
	require.True(t, ok, "camel case name should be normalized")
	assert.Equal(t, TypeFloat, d.Type)
	assert.True(t, d.Required)
	assert.Equal(t, "Hz", d.Units)
	assert.Equal(t, "number", d.Style)

	units, ok := table.Units("station.channel.sample_rate")
	require.True(t, ok)
	assert.Equal(t, "Hz", units)

	_, ok = table.Units("station.channel.component")
	assert.False(t, ok, "units: none means no units")

	_, ok = table.Units("station.missing")
	assert.False(t, ok)

	typ, ok := table.ValueType("station.channel.measured")
	require.True(t, ok)
	assert.Equal(t, TypeBoolean, typ)

	_, ok = table.ValueType("station.id")
	assert.False(t, ok, "strings carry no type attribute")
}

func TestParse_ReportsEveryInvalidEntry(t *testing.T) {
	data := []byte(`
a.b:
  type: complex
c.d:
  type: int
  style: fancy
1bad:
  type: int
ok:
  type: int
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.ErrorIs(t, err, ErrInvalidStyle)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.NotContains(t, err.Error(), "ok:")
}

func TestParse_Empty(t *testing.T) {
	table, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	_, err = Parse([]byte("- a\n- b\n"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "station.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(table, path))

	back, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, table.Names(), back.Names())

	for _, n := range table.Names() {
		want, _ := table.Lookup(n)
		got, _ := back.Lookup(n)
		assert.Equal(t, want, got, n)
	}
}

func TestMerge(t *testing.T) {
	channel := NewTable()
	require.NoError(t, channel.Add("sample_rate", Description{Type: "float", Units: "Hz"}))
	require.NoError(t, channel.Add("component", Description{Type: "str", Required: true}))

	station := NewTable()
	require.NoError(t, station.Add("station.id", Description{Type: "str"}))
	require.NoError(t, station.Merge("station.channel", channel))

	assert.Equal(t, []string{"station.id", "station.channel.sample_rate", "station.channel.component"}, station.Names())
	assert.Equal(t, []string{"station.channel.component"}, station.Required())

	require.NoError(t, station.Merge("", nil))
}

func TestNilTable(t *testing.T) {
	var table *Table

	_, ok := table.Units("a")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Names())
}

func TestNormalizers(t *testing.T) {
	typeTests := map[string]string{
		"int":             TypeInteger,
		"Integer":         TypeInteger,
		"<class 'float'>": TypeFloat,
		"str":             TypeString,
		"":                TypeString,
		"bool":            TypeBoolean,
		"<class 'bool'>":  TypeBoolean,
	}

	for in, want := range typeTests {
		got, err := NormalizeType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := NormalizeType("complex")
	assert.ErrorIs(t, err, ErrInvalidType)

	assert.Equal(t, "", NormalizeUnits("None"))
	assert.Equal(t, "", NormalizeUnits(" empty "))
	assert.Equal(t, "mV/km", NormalizeUnits("mV/km"))

	style, err := NormalizeStyle("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, style)

	style, err = NormalizeStyle("Date_Time")
	require.NoError(t, err)
	assert.Equal(t, "date_time", style)

	name, err := NormalizeName("Station/DataLogger/sampleRate")
	require.NoError(t, err)
	assert.Equal(t, "station.data_logger.sample_rate", name)

	_, err = NormalizeName("9lives")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NormalizeName("a..b")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestValidate(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "station.yaml"))
	require.NoError(t, err)

	doc := metadict.FromPairs("station", metadict.FromPairs(
		"id", "mt001",
		"location", metadict.FromPairs(
			"latitude", 40.5,
			"longitude", int64(-116),
		),
		"channel", metadict.FromPairs(
			"sample_rate", "fast",
			"component", "ex",
			"sample_rat", 8.0,
		),
	))

	diags := table.Validate(doc)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, CodeTypeMismatch, diags.Errors[0].Code)
	assert.Equal(t, "station.channel.sample_rate", diags.Errors[0].Path)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, CodeUnknownAttribute, diags.Warnings[0].Code)
	assert.Equal(t, "station.channel.sample_rat", diags.Warnings[0].Path)
	assert.Contains(t, diags.Warnings[0].Suggestions, "station.channel.sample_rate")

	doc.Branch("station").Delete("id")
	doc.Branch("station").Branch("channel").Set("sample_rate", 100.0)

	diags = table.Validate(doc)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, CodeMissingRequired, diags.Errors[0].Code)
	assert.Equal(t, "station.id", diags.Errors[0].Path)
}

func TestLookup_NormalizesMisses(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "station.yaml"))
	require.NoError(t, err)

	units, ok := table.Units("station.channel.sampleRate")
	require.True(t, ok)
	assert.Equal(t, "Hz", units)

	typ, ok := table.ValueType("station.channel.sampleRate")
	require.True(t, ok)
	assert.Equal(t, TypeFloat, typ)

	_, ok = table.Lookup("station.channel.sampleRat")
	assert.False(t, ok)

	_, ok = table.Lookup("9lives")
	assert.False(t, ok)
}

func TestValidate_CamelCaseDocument(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "station.yaml"))
	require.NoError(t, err)

	doc := metadict.FromPairs("station", metadict.FromPairs(
		"id", "mt001",
		"location", metadict.FromPairs("latitude", 40.5, "longitude", -116.2),
		"channel", metadict.FromPairs("sampleRate", 256.0, "component", "ex"),
	))

	diags := table.Validate(doc)
	assert.Empty(t, diags.Errors)
	assert.Empty(t, diags.Warnings)
}

func TestCheckValue(t *testing.T) {
	assert.NoError(t, CheckValue(int64(3), TypeInteger))
	assert.NoError(t, CheckValue(3.0, TypeInteger))
	assert.Error(t, CheckValue(3.5, TypeInteger))
	assert.NoError(t, CheckValue(3, TypeFloat))
	assert.NoError(t, CheckValue([]any{1.5, 2.5}, TypeFloat))
	assert.Error(t, CheckValue([]string{"a"}, TypeFloat))
	assert.NoError(t, CheckValue(true, TypeBoolean))
	assert.Error(t, CheckValue("true", TypeBoolean))
	assert.NoError(t, CheckValue(nil, TypeBoolean))
}
