package transcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mth5meta/internal/attrs"
	"mth5meta/internal/metadict"
)

// Coerce returns a copy of doc in which string leaves described in table
// as integer, float or boolean are converted to that type. Leaves without a
// description, or described as strings, are kept.
func Coerce(doc *metadict.Map, table *attrs.Table) (*metadict.Map, error) {
	out := doc.Clone()
	if out == nil {
		return nil, nil
	}

	if err := coerceMap(out, nil, table); err != nil {
		return nil, err
	}

	return out, nil
}

func coerceMap(m *metadict.Map, base metadict.Path, table *attrs.Table) error {
	for _, key := range m.Keys() {
		path := base.Child(key)
		v, _ := m.Get(key)

		if sub, ok := v.(*metadict.Map); ok {
			if err := coerceMap(sub, path, table); err != nil {
				return err
			}

			continue
		}

		typ, ok := table.ValueType(path.String())
		if !ok {
			continue
		}

		nv, err := coerceValue(v, typ)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		m.Set(key, nv)
	}

	return nil
}

func coerceValue(v any, typ string) (any, error) {
	if items, ok := v.([]any); ok {
		out := make([]any, len(items))

		for i, item := range items {
			nv, err := coerceValue(item, typ)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			out[i] = nv
		}

		return out, nil
	}

	s, ok := v.(string)
	if !ok {
		return v, nil
	}

	s = strings.TrimSpace(s)

	var (
		out any
		err error
	)

	switch typ {
	case attrs.TypeInteger:
		out, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			// "100.0" is a valid integer value in float notation
			var f float64
			if f, err = strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
				out = int64(f)
			} else if err == nil {
				err = errors.New("not integral")
			}
		}
	case attrs.TypeFloat:
		out, err = strconv.ParseFloat(s, 64)
	case attrs.TypeBoolean:
		out, err = strconv.ParseBool(s)
	default:
		return v, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w %q to %s: %w", ErrCoerce, s, typ, err)
	}

	return out, nil
}
