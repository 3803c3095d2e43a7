package xmltree

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<!-- template -->
<metadata xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <idinfo>
    <citation>
      <citeinfo>
        <origin>A</origin>
        <origin>B</origin>
        <pubdate>2021</pubdate>
        <title lang="en">  Old title  </title>
      </citeinfo>
    </citation>
    <keywords>
      <theme><themekt>None</themekt><themekey>x</themekey></theme>
      <theme><themekt>ISO</themekt></theme>
    </keywords>
  </idinfo>
</metadata>
`

func mustParse(t *testing.T, s string) *Element {
	t.Helper()

	el, err := Parse([]byte(s))
	require.NoError(t, err)

	return el
}

func TestParse(t *testing.T) {
	root := mustParse(t, sample)

	assert.Equal(t, "metadata", root.Tag)
	assert.Empty(t, root.Attrs, "namespace declarations are dropped")
	assert.Empty(t, root.Text)

	title, err := root.Find("idinfo/citation/citeinfo/title")
	require.NoError(t, err)
	assert.Equal(t, "  Old title  ", title.Text, "leaf text is kept verbatim")

	lang, ok := title.Attr("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)

	origins := root.Children[0].Children[0].Children[0].ChildrenByTag("origin")
	require.Len(t, origins, 2, spew.Sdump(root))
	assert.Equal(t, "B", origins[1].Text)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("   "))
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = Parse([]byte("<a></a><b></b>"))
	assert.ErrorIs(t, err, ErrMultipleRoots)

	_, err = Parse([]byte("<a><b></a>"))
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	root := NewElement("station",
		NewElement("channel",
			&Element{Tag: "sample_rate", Text: "100", Attrs: []Attr{{Name: "units", Value: "Hz"}}},
			NewText("comments", "a < b"),
			NewText("empty", ""),
		),
	)

	data, err := Marshal(root)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<station>
  <channel>
    <sample_rate units="Hz">100</sample_rate>
    <comments>a &lt; b</comments>
    <empty></empty>
  </channel>
</station>
`
	assert.Equal(t, want, string(data))

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, root, back)
}

func TestWriteFile_ReadFile(t *testing.T) {
	root := mustParse(t, sample)
	path := filepath.Join(t.TempDir(), "out.xml")

	require.NoError(t, WriteFile(path, root))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, root, back)

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in      string
		want    []Step
		wantErr bool
	}{
		{in: "idinfo", want: []Step{{Tag: "idinfo"}}},
		{in: "keywords/theme[1]/themekey", want: []Step{{Tag: "keywords"}, {Tag: "theme", Index: 1}, {Tag: "themekey"}}},
		{in: "place[0]", want: []Step{{Tag: "place"}}},
		{in: "", wantErr: true},
		{in: "a//b", wantErr: true},
		{in: "a[", wantErr: true},
		{in: "a[x]", wantErr: true},
		{in: "a[-1]", wantErr: true},
		{in: "[2]", wantErr: true},
		{in: "1abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Steps)
		})
	}

	assert.Equal(t, "keywords/theme[1]/themekey", MustParsePath("keywords/theme[1]/themekey").String())
	assert.Panics(t, func() { MustParsePath("") })
}

func TestFind_Missing(t *testing.T) {
	root := mustParse(t, sample)

	_, err := root.Find("idinfo/citation/citeinfo/titel")
	require.ErrorIs(t, err, ErrMissingPath)

	var mpe *MissingPathError
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, 3, mpe.Depth)
	assert.Contains(t, mpe.Suggestions, "title")
	assert.Contains(t, err.Error(), "did you mean")

	_, err = root.Find("idinfo/keywords/theme[2]")
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, 2, mpe.Count)
	assert.Empty(t, mpe.Suggestions)

	theme, err := root.Find("idinfo/keywords/theme[1]/themekt")
	require.NoError(t, err)
	assert.Equal(t, "ISO", theme.Text)
}

func tags(el *Element) []string {
	out := make([]string, len(el.Children))
	for i, c := range el.Children {
		out[i] = c.Tag
	}

	return out
}

func TestReplaceGroup(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		el := NewElement("citeinfo",
			NewText("origin", "A"), NewText("origin", "B"), NewText("pubdate", "2021"))

		el.ReplaceGroup("origin", "", []*Element{NewText("origin", "X"), NewText("origin", "Y"), NewText("origin", "Z")})

		assert.Equal(t, []string{"origin", "origin", "origin", "pubdate"}, tags(el))
		assert.Equal(t, "Z", el.Children[2].Text)
	})

	t.Run("empty group goes after anchor", func(t *testing.T) {
		el := NewElement("theme", NewText("themekt", "None"), NewText("other", ""))

		el.ReplaceGroup("themekey", "themekt", []*Element{NewText("themekey", "a"), NewText("themekey", "b")})

		assert.Equal(t, []string{"themekt", "themekey", "themekey", "other"}, tags(el))
	})

	t.Run("no anchor appends", func(t *testing.T) {
		el := NewElement("lineage", NewText("x", ""))

		el.ReplaceGroup("procstep", "srcinfo", []*Element{NewElement("procstep")})

		assert.Equal(t, []string{"x", "procstep"}, tags(el))
	})

	t.Run("empty group without anchor goes first", func(t *testing.T) {
		el := NewElement("citeinfo", NewText("pubdate", "2021"))

		el.ReplaceGroup("origin", "", []*Element{NewText("origin", "A")})

		assert.Equal(t, []string{"origin", "pubdate"}, tags(el))
	})

	t.Run("interleaved groups keep order", func(t *testing.T) {
		el := NewElement("p", NewText("a", ""), NewText("k", "1"), NewText("b", ""), NewText("k", "2"))

		el.ReplaceGroup("k", "a", []*Element{NewText("k", "new")})

		assert.Equal(t, []string{"a", "k", "b"}, tags(el))
	})

	t.Run("empty replacement removes", func(t *testing.T) {
		el := NewElement("p", NewText("k", "1"), NewText("b", ""))

		el.ReplaceGroup("k", "", nil)

		assert.Equal(t, []string{"b"}, tags(el))
	})
}

func TestInsertAfterLast(t *testing.T) {
	el := NewElement("lineage", NewText("srcinfo", ""), NewText("srcinfo", ""), NewText("procstep", ""))

	el.InsertAfterLast("srcinfo", NewText("new", ""))
	assert.Equal(t, []string{"srcinfo", "srcinfo", "new", "procstep"}, tags(el))

	el.InsertAfterLast("missing", NewText("tail", ""))
	assert.Equal(t, "tail", el.Children[len(el.Children)-1].Tag)
}

func TestRemoveChildren(t *testing.T) {
	el := NewElement("p", NewText("k", ""), NewText("b", ""), NewText("k", ""))

	assert.Equal(t, 2, el.RemoveChildren("k"))
	assert.Equal(t, 0, el.RemoveChildren("k"))
	assert.Equal(t, []string{"b"}, tags(el))
}

func TestClone(t *testing.T) {
	root := mustParse(t, sample)
	cp := root.Clone()

	require.Equal(t, root, cp)

	title, err := cp.Find("idinfo/citation/citeinfo/title")
	require.NoError(t, err)
	title.SetText("New")
	title.SetAttr("lang", "de")
	title.SetAttr("extra", "1")

	orig, err := root.Find("idinfo/citation/citeinfo/title")
	require.NoError(t, err)
	assert.Equal(t, "  Old title  ", orig.Text)
	assert.Equal(t, []Attr{{Name: "lang", Value: "en"}}, orig.Attrs)
	assert.Len(t, title.Attrs, 2)

	var nilEl *Element
	assert.Nil(t, nilEl.Clone())
}
