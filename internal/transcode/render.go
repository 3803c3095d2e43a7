package transcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"mth5meta/internal/attrs"
	"mth5meta/internal/metadict"
	"mth5meta/internal/xmltree"
)

// SequenceTag is the tag of each rendered sequence item.
const SequenceTag = "i"

// Annotation attribute names.
const (
	UnitsAttr = "units"
	TypeAttr  = "type"
)

// Render builds an element tree from a document with exactly one top-level
// key. table may be nil.
func Render(doc *metadict.Map, table *attrs.Table) (*xmltree.Element, error) {
	if doc.Len() != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRootCount, doc.Len())
	}

	name := doc.Keys()[0]
	if !xmltree.IsValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, name)
	}

	v, _ := doc.Get(name)

	body, ok := metadict.AsMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrRootNotMapping, name, v)
	}

	r := renderer{table: table}
	root := xmltree.NewElement(name)

	if err := r.renderMap(root, metadict.Path{name}, body); err != nil {
		return nil, err
	}

	return root, nil
}

// RenderFlat structures a flat mapping and renders the result.
func RenderFlat(flat *metadict.Map, table *attrs.Table, opts ...metadict.Option) (*xmltree.Element, error) {
	doc, err := metadict.Structure(flat, opts...)
	if err != nil {
		return nil, err
	}

	return Render(doc, table)
}

type renderer struct {
	table *attrs.Table
}

func (r renderer) renderMap(parent *xmltree.Element, path metadict.Path, m *metadict.Map) error {
	var err error

	m.Range(func(key string, value any) bool {
		if !xmltree.IsValidName(key) {
			err = fmt.Errorf("%w: %q at %s", ErrInvalidTag, key, path)
			return false
		}

		// <i> children are read back as sequence items
		if key == SequenceTag {
			err = fmt.Errorf("%w: %q is reserved for sequence items at %s", ErrInvalidTag, key, path)
			return false
		}

		child := xmltree.NewElement(key)
		parent.Append(child)

		err = r.render(child, path.Child(key), value)

		return err == nil
	})

	return err
}

// render fills el from value. Sequence items share the path of el.
func (r renderer) render(el *xmltree.Element, path metadict.Path, value any) error {
	switch metadict.KindOf(value) {
	case metadict.KindMap:
		m, _ := metadict.AsMap(value)
		if err := r.renderMap(el, path, m); err != nil {
			return err
		}

	case metadict.KindSequence:
		items, _ := metadict.Items(value)
		for _, item := range items {
			child := xmltree.NewElement(SequenceTag)
			el.Append(child)

			if err := r.render(child, path, item); err != nil {
				return err
			}
		}

	default:
		text, err := formatScalar(value)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		el.SetText(text)
	}

	r.annotate(el, path.String())

	return nil
}

func (r renderer) annotate(el *xmltree.Element, name string) {
	if units, ok := r.table.Units(name); ok {
		el.SetAttr(UnitsAttr, units)
	}

	if typ, ok := r.table.ValueType(name); ok {
		el.SetAttr(TypeAttr, typ)
	}
}

// formatScalar renders a leaf as element text. nil renders as no text.
func formatScalar(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case json.Number:
		return val.String(), nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
