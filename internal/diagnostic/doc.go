// Package diagnostic provides structured errors, warnings and notes collected
// while validating attribute tables and template configurations.
//
// Key capabilities:
//   - Accumulate every problem in one pass instead of failing on the first
//   - Attach the document and attribute path each problem relates to
//   - Carry "did you mean" suggestions
//   - Collapse into a single error that still unwraps to the causes
package diagnostic
