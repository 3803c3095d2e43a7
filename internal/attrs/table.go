package attrs

import (
	"fmt"
	"slices"
)

// Table maps dotted attribute paths to descriptions. The zero value is not
// usable; call NewTable. A nil *Table answers every lookup with a miss.
type Table struct {
	names   []string
	entries map[string]Description
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Description)}
}

// Add normalizes name and d and stores the description. An existing entry
// is replaced in place.
func (t *Table) Add(name string, d Description) error {
	n, err := NormalizeName(name)
	if err != nil {
		return err
	}

	nd, err := d.Normalize()
	if err != nil {
		return fmt.Errorf("attribute %q: %w", n, err)
	}

	if _, exists := t.entries[n]; !exists {
		t.names = append(t.names, n)
	}

	t.entries[n] = nd

	return nil
}

// Lookup returns the description stored for name. Names are stored in
// lower snake case, so a miss is retried with the normalized form and
// "station.channel.sampleRate" finds "station.channel.sample_rate".
func (t *Table) Lookup(name string) (Description, bool) {
	if t == nil {
		return Description{}, false
	}

	if d, ok := t.entries[name]; ok {
		return d, true
	}

	n, err := NormalizeName(name)
	if err != nil || n == name {
		return Description{}, false
	}

	d, ok := t.entries[n]

	return d, ok
}

// Units returns the units declared for name. A missing entry and an entry
// without units are both reported as a miss.
func (t *Table) Units(name string) (string, bool) {
	d, ok := t.Lookup(name)
	if !ok || d.Units == "" {
		return "", false
	}

	return d.Units, true
}

// ValueType returns the declared type of name when it is not a string.
func (t *Table) ValueType(name string) (string, bool) {
	d, ok := t.Lookup(name)
	if !ok || d.Type == "" || d.Type == TypeString {
		return "", false
	}

	return d.Type, true
}

// Merge copies every entry of other into t. A non-empty prefix is joined to
// each name with ".", so a channel table can be mounted under "station.channel".
func (t *Table) Merge(prefix string, other *Table) error {
	if other == nil {
		return nil
	}

	for _, n := range other.names {
		name := n
		if prefix != "" {
			name = prefix + "." + n
		}

		if err := t.Add(name, other.entries[n]); err != nil {
			return err
		}
	}

	return nil
}

// Names returns the attribute names in insertion order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.names)
}

// Len returns the number of attributes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.names)
}

// Required returns the names of required attributes in insertion order.
func (t *Table) Required() []string {
	if t == nil {
		return nil
	}

	var out []string

	for _, n := range t.names {
		if t.entries[n].Required {
			out = append(out, n)
		}
	}

	return out
}
