package attrs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mth5meta/internal/diagnostic"
)

// LoadFile loads and parses a YAML attribute table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attribute table %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("attribute table %s: %w", path, err)
	}

	return t, nil
}

// Parse parses YAML data into a Table, keeping document order. Every invalid
// entry is reported, not only the first.
func Parse(data []byte) (*Table, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse attribute YAML: %w", err)
	}

	t := NewTable()

	// empty document
	if len(doc.Content) == 0 {
		return t, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: attribute table must be a mapping", root.Line)
	}

	var diags diagnostic.Diagnostics

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var d Description
		if err := valNode.Decode(&d); err != nil {
			diags.AddErr("DECODE", err, fmt.Sprintf("line %d", valNode.Line), keyNode.Value)
			continue
		}

		if err := t.Add(keyNode.Value, d); err != nil {
			diags.AddErr("INVALID", err, fmt.Sprintf("line %d", keyNode.Line), keyNode.Value)
		}
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return t, nil
}

// Marshal serializes a Table to YAML in insertion order.
func Marshal(t *Table) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, n := range t.Names() {
		valNode := &yaml.Node{}
		if err := valNode.Encode(t.entries[n]); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", n, err)
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: n},
			valNode,
		)
	}

	return yaml.Marshal(root)
}

// WriteFile writes a Table to the given path.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal attribute table: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write attribute table %s: %w", path, err)
	}

	return nil
}
