// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeName: normalizes attribute and tag names for fuzzy matching
//   - SnakeCase: rewrites dotted attribute names in the lower snake case standard
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against a missing one
package match
