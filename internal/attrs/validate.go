package attrs

import (
	"fmt"
	"math"

	"mth5meta/internal/diagnostic"
	"mth5meta/internal/match"
	"mth5meta/internal/metadict"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnknownAttribute = "UNKNOWN_ATTRIBUTE"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeMissingRequired  = "MISSING_REQUIRED"
)

// Validate checks a nested metadata document against the table:
//   - every leaf must be described (warning with suggestions otherwise)
//   - leaf values must match the declared type
//   - every required attribute must be present and non-nil
func (t *Table) Validate(doc *metadict.Map) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	present := make(map[string]bool)

	err := metadict.Walk(doc, func(e metadict.Entry) error {
		name := e.Path.String()

		key := name
		if n, err := NormalizeName(name); err == nil {
			key = n
		}

		present[key] = present[key] || e.Value != nil

		d, ok := t.Lookup(name)
		if !ok {
			diags.AddWarning(CodeUnknownAttribute, "attribute is not described", name,
				match.Suggest(name, t.Names(), 3)...)

			return nil
		}

		if err := CheckValue(e.Value, d.Type); err != nil {
			diags.AddErr(CodeTypeMismatch, err, "", name)
		}

		return nil
	})
	if err != nil {
		diags.AddErr("WALK", err, "", "")
	}

	for _, name := range t.Required() {
		if !present[name] {
			diags.AddError(CodeMissingRequired, "required attribute is missing", "", name)
		}
	}

	return diags
}

// CheckValue reports whether v can hold a value of the declared type.
// nil always passes; sequences are checked item by item.
func CheckValue(v any, typ string) error {
	if v == nil {
		return nil
	}

	if items, ok := metadict.Items(v); ok {
		for i, item := range items {
			if err := CheckValue(item, typ); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}

		return nil
	}

	ok := false

	switch typ {
	case TypeInteger:
		ok = isInteger(v)
	case TypeFloat:
		ok = isInteger(v) || isFloat(v)
	case TypeBoolean:
		_, ok = v.(bool)
	case TypeString, "":
		_, ok = v.(string)
	}

	if !ok {
		return fmt.Errorf("expected %s, got %T", typ, v)
	}

	return nil
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == math.Trunc(n)
	case float32:
		return float64(n) == math.Trunc(float64(n))
	default:
		return false
	}
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}
