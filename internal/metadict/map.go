package metadict

import (
	"maps"
	"reflect"
	"slices"
)

// Map is a string-keyed mapping that remembers insertion order.
//
// Values are scalars (string, bool, integers, floats, nil), nested *Map
// branches, or sequences ([]any). The zero value is not usable; call New.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// FromPairs builds a Map from alternating key/value arguments.
// It panics when called with an odd number of arguments or a non-string key.
func FromPairs(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("metadict: FromPairs needs an even number of arguments")
	}

	m := New()

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("metadict: FromPairs key must be a string")
		}

		m.Set(key, kv[i+1])
	}

	return m
}

// Set assigns value to key. A new key is appended to the order; an existing
// key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has returns true if key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Branch returns the nested map stored under key, or nil when key is absent
// or holds a leaf.
func (m *Map) Branch(key string) *Map {
	v, ok := m.values[key]
	if !ok {
		return nil
	}

	sub, _ := v.(*Map)

	return sub
}

// GetPath descends through nested branches and returns the value at path.
func (m *Map) GetPath(path Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	cur := m

	for _, seg := range path[:len(path)-1] {
		cur = cur.Branch(seg)
		if cur == nil {
			return nil, false
		}
	}

	return cur.Get(path[len(path)-1])
}

// SortKeys reorders the keys lexicographically. Nested maps are not touched.
func (m *Map) SortKeys() {
	slices.Sort(m.keys)
}

// Clone returns a deep copy. Sequences are copied; scalars are shared.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := &Map{
		keys:   slices.Clone(m.keys),
		values: maps.Clone(m.values),
	}

	for k, v := range out.values {
		out.values[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}

		return items
	default:
		return v
	}
}

// Equal reports whether a and b hold the same keys and values, ignoring key
// order at every level. Sequence order is significant.
func Equal(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}

	if a == nil || b == nil {
		return a.Len() == 0 && b.Len() == 0
	}

	for _, k := range a.keys {
		bv, ok := b.values[k]
		if !ok {
			return false
		}

		if !equalValue(a.values[k], bv) {
			return false
		}
	}

	return true
}

func equalValue(a, b any) bool {
	if am, ok := asMap(a); ok {
		bm, ok := asMap(b)
		return ok && Equal(am, bm)
	}

	as, aok := asSequence(a)
	bs, bok := asSequence(b)

	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}

		for i := range as {
			if !equalValue(as[i], bs[i]) {
				return false
			}
		}

		return true
	}

	if _, ok := asMap(b); ok {
		return false
	}

	return reflect.DeepEqual(a, b)
}
