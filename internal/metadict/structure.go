package metadict

import "fmt"

// Structure converts a flat map back into a nested map by splitting every key
// on the separator. Branches are created in first-seen order.
//
//	{"a.b": 1, "a.c.d": 2} -> {"a": {"b": 1, "c": {"d": 2}}}
//
// A key that is both a leaf and a branch ("a" and "a.b") fails with a
// *ConflictError, whichever of the two comes first.
func Structure(flat *Map, opts ...Option) (*Map, error) {
	o := buildOptions(opts)
	s := structurer{root: New(), branches: make(map[*Map]struct{})}

	if flat == nil {
		return s.root, nil
	}

	for _, key := range flat.keys {
		path, err := SplitPath(key, o.sep)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", key, err)
		}

		if err := s.assign(path, key, flat.values[key]); err != nil {
			return nil, err
		}
	}

	return s.root, nil
}

type structurer struct {
	root *Map
	// branches holds maps created while structuring; only these may be
	// descended into by later keys.
	branches map[*Map]struct{}
}

func (s *structurer) assign(path Path, key string, value any) error {
	cur := s.root

	for i, seg := range path[:len(path)-1] {
		existing, ok := cur.Get(seg)
		if !ok {
			sub := New()
			s.branches[sub] = struct{}{}
			cur.Set(seg, sub)
			cur = sub

			continue
		}

		sub, isMap := existing.(*Map)
		if _, created := s.branches[sub]; !isMap || !created {
			return &ConflictError{Path: path[:i+1], Key: key}
		}

		cur = sub
	}

	last := path[len(path)-1]
	if cur.Has(last) {
		return &ConflictError{Path: path, Key: key}
	}

	cur.Set(last, cloneValue(value))

	return nil
}
