package metadict

import (
	"reflect"
	"slices"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a mapping value.
type Kind int

const (
	_ Kind = iota // invalid

	KindScalar
	KindMap
	KindSequence
)

// KindOf returns the kind of v. Plain map[string]any values count as
// branches; any slice other than []byte counts as a sequence.
func KindOf(v any) Kind {
	if _, ok := asMap(v); ok {
		return KindMap
	}

	if _, ok := asSequence(v); ok {
		return KindSequence
	}

	return KindScalar
}

// asMap returns v as a *Map. map[string]any is converted with its keys sorted,
// since Go maps carry no order of their own.
func asMap(v any) (*Map, bool) {
	switch val := v.(type) {
	case *Map:
		return val, val != nil
	case map[string]any:
		return fromGoMap(val), true
	default:
		return nil, false
	}
}

func fromGoMap(gm map[string]any) *Map {
	keys := make([]string, 0, len(gm))
	for k := range gm {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	m := New()
	for _, k := range keys {
		m.Set(k, gm[k])
	}

	return m
}

func asSequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return val, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// Items returns the elements of a sequence value.
func Items(v any) ([]any, bool) {
	return asSequence(v)
}

// AsMap returns v as a branch. A plain map[string]any is converted with its
// keys sorted.
func AsMap(v any) (*Map, bool) {
	return asMap(v)
}
