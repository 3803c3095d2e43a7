package attrs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"mth5meta/internal/match"
)

// Value types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeBoolean = "boolean"
)

// DefaultStyle is used when a description names no style.
const DefaultStyle = "name"

// AcceptedStyles lists the string styles a description may declare.
var AcceptedStyles = []string{
	"name", "url", "email", "number", "date",
	"time", "date_time", "net_code", "name_list",
}

var (
	ErrInvalidName  = errors.New("invalid attribute name")
	ErrInvalidType  = errors.New("invalid attribute type")
	ErrInvalidStyle = errors.New("invalid attribute style")
)

// Description describes one attribute.
type Description struct {
	Type     string `yaml:"type"               json:"type"`
	Required bool   `yaml:"required"           json:"required"`
	Units    string `yaml:"units,omitempty"    json:"units,omitempty"`
	Style    string `yaml:"style,omitempty"    json:"style,omitempty"`
}

// Normalize returns a copy with type, units and style in canonical form.
func (d Description) Normalize() (Description, error) {
	typ, err := NormalizeType(d.Type)
	if err != nil {
		return Description{}, err
	}

	style, err := NormalizeStyle(d.Style)
	if err != nil {
		return Description{}, err
	}

	return Description{
		Type:     typ,
		Required: d.Required,
		Units:    NormalizeUnits(d.Units),
		Style:    style,
	}, nil
}

// NormalizeType maps a loose type name ("int", "str", "<class 'float'>") to one
// of the Type constants. An empty type means string.
func NormalizeType(v string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(v))

	switch {
	case s == "":
		return TypeString, nil
	case strings.Contains(s, "int"):
		return TypeInteger, nil
	case strings.Contains(s, "float"), s == "number", s == "double":
		return TypeFloat, nil
	case strings.Contains(s, "str"):
		return TypeString, nil
	case strings.Contains(s, "bool"):
		return TypeBoolean, nil
	default:
		return "", fmt.Errorf("%w %q: must be one of int, float, str, bool", ErrInvalidType, v)
	}
}

// NormalizeUnits trims units; "none", "empty" and "" yield "". Case is kept.
func NormalizeUnits(v string) string {
	s := strings.TrimSpace(v)

	switch strings.ToLower(s) {
	case "none", "empty":
		return ""
	}

	return s
}

// NormalizeStyle lowercases style and checks it against AcceptedStyles.
func NormalizeStyle(v string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return DefaultStyle, nil
	}

	if !slices.Contains(AcceptedStyles, s) {
		return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidStyle, v, strings.Join(AcceptedStyles, ", "))
	}

	return s, nil
}

// NormalizeName rewrites an attribute name in the dotted lower snake case
// standard. "/" separators become ".".
func NormalizeName(name string) (string, error) {
	n := strings.TrimSpace(strings.ReplaceAll(name, "/", "."))
	if n == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	n = match.SnakeCase(n)

	if n[0] >= '0' && n[0] <= '9' {
		return "", fmt.Errorf("%w %q: cannot start with a number", ErrInvalidName, name)
	}

	for _, seg := range strings.Split(n, ".") {
		if seg == "" {
			return "", fmt.Errorf("%w %q: empty segment", ErrInvalidName, name)
		}
	}

	return n, nil
}
