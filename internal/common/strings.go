package common

import "strings"

// UnknownStr is printed for enum values outside their defined range.
const UnknownStr = "unknown"

// SplitList splits a comma-separated list, trimming whitespace and dropping
// empty items.
func SplitList(s string) []string {
	return Compact(strings.Split(s, ","))
}
