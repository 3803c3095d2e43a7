package metadict

import (
	"fmt"
	"strings"
)

// Option configures Flatten and Structure.
type Option func(*options)

type options struct {
	sep    string
	prefix string
	strict bool
}

func buildOptions(opts []Option) options {
	o := options{sep: DefaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	if o.sep == "" {
		o.sep = DefaultSeparator
	}

	return o
}

// WithSeparator sets the separator used to join and split keys. An empty
// separator falls back to DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// WithPrefix prepends prefix to every flattened key. Structure ignores it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithStrictKeys makes Flatten reject keys that contain the separator.
func WithStrictKeys() Option {
	return func(o *options) { o.strict = true }
}

// Entry is a leaf visited by Walk.
type Entry struct {
	Path  Path
	Value any
}

// Walk calls fn for every leaf of m in depth-first, insertion order.
// An empty branch is reported as a leaf holding an empty *Map so that it
// survives a flatten/structure round trip.
func Walk(m *Map, fn func(Entry) error) error {
	return walk(m, nil, fn)
}

func walk(m *Map, base Path, fn func(Entry) error) error {
	for _, k := range m.keys {
		path := base.Child(k)
		v := m.values[k]

		if sub, ok := asMap(v); ok && sub.Len() > 0 {
			if err := walk(sub, path, fn); err != nil {
				return err
			}

			continue
		}

		if err := fn(Entry{Path: path, Value: v}); err != nil {
			return err
		}
	}

	return nil
}

// Flatten converts a nested map into a flat map whose keys are the joined
// paths of its leaves.
//
//	{"a": {"b": 1, "c": {"d": 2}}} -> {"a.b": 1, "a.c.d": 2}
func Flatten(m *Map, opts ...Option) (*Map, error) {
	o := buildOptions(opts)
	out := New()

	if m == nil {
		return out, nil
	}

	err := Walk(m, func(e Entry) error {
		if o.strict {
			for _, seg := range e.Path {
				if strings.Contains(seg, o.sep) {
					return fmt.Errorf("%w: %q (separator %q)", ErrAmbiguousKey, seg, o.sep)
				}
			}
		}

		key := e.Path.Join(o.sep)
		if o.prefix != "" {
			key = o.prefix + o.sep + key
		}

		out.Set(key, e.Value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
