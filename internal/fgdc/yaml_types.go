package fgdc

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"mth5meta/internal/common"
)

// StringOrArray is a list field that accepts either a YAML sequence or a
// single comma separated string. Sequence items are not split, so names
// like "Peacock, J." survive in list form.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// "a, b" and [a, b] decode to the same value.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = common.SplitList(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = common.Compact(arr)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise a list.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the list is empty.
func (s StringOrArray) IsEmpty() bool {
	return len(s) == 0
}

// Contains returns true if the list contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
