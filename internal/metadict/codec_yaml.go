package metadict

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Map.
// Mapping order is kept; integers decode as int64.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %v", node.Line, node.Kind)
	}

	out, err := decodeYAMLMapping(node)
	if err != nil {
		return err
	}

	*m = *out

	return nil
}

func decodeYAMLMapping(node *yaml.Node) (*Map, error) {
	m := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		v, err := decodeYAMLValue(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		m.Set(key, v)
	}

	return m, nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)

	case yaml.MappingNode:
		return decodeYAMLMapping(node)

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}

		return items, nil

	default:
		// dates stay as written; decoding into any would yield time.Time
		if node.ShortTag() == "!!timestamp" {
			return node.Value, nil
		}

		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		if i, ok := v.(int); ok {
			return int64(i), nil
		}

		return v, nil
	}
}

// MarshalYAML implements custom YAML marshaling for Map.
// Outputs a mapping node in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range m.keys {
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valNode,
		)
	}

	return node, nil
}
