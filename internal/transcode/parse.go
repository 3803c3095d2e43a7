package transcode

import (
	"strings"

	"mth5meta/internal/metadict"
	"mth5meta/internal/xmltree"
)

// Parse converts el into a mapping with the single key el.Tag.
//
// A leaf yields its trimmed text, or nil when there is none. Children that
// share a tag are grouped into a sequence; a tag seen once yields its value
// directly. An element whose children are all <i> items yields the sequence
// of their values, undoing what Render does for sequences. Keys are sorted
// at every level. Attributes are not included.
func Parse(el *xmltree.Element) *metadict.Map {
	return metadict.FromPairs(el.Tag, parseValue(el))
}

func parseValue(el *xmltree.Element) any {
	if len(el.Children) == 0 {
		text := strings.TrimSpace(el.Text)
		if text == "" {
			return nil
		}

		return text
	}

	if isSequence(el) {
		items := make([]any, len(el.Children))
		for i, c := range el.Children {
			items[i] = parseValue(c)
		}

		return items
	}

	groups := make(map[string][]any)
	out := metadict.New()

	for _, c := range el.Children {
		if _, seen := groups[c.Tag]; !seen {
			out.Set(c.Tag, nil)
		}

		groups[c.Tag] = append(groups[c.Tag], parseValue(c))
	}

	for _, tag := range out.Keys() {
		if vals := groups[tag]; len(vals) == 1 {
			out.Set(tag, vals[0])
		} else {
			out.Set(tag, vals)
		}
	}

	out.SortKeys()

	return out
}

func isSequence(el *xmltree.Element) bool {
	for _, c := range el.Children {
		if c.Tag != SequenceTag {
			return false
		}
	}

	return true
}
