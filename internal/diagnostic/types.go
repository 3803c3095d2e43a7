package diagnostic

import (
	"fmt"
	"strings"

	"mth5meta/internal/common"
)

// Diagnostics collects the findings of one validation pass. Errors make the
// subject unusable; warnings are reported and otherwise ignored.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. MISSING_REQUIRED.
	Code    string
	Message string
	// Source names the file or line the finding came from (if any).
	Source string
	// Path is the dotted attribute or config key (if any).
	Path        string
	Suggestions []string
	// Err is the underlying error, kept for errors.Is matching.
	Err error
}

// Severity of a finding.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error without an underlying cause.
func (d *Diagnostics) AddError(code, message, source, path string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Source:   source,
		Path:     path,
	})
}

// AddErr records err as an error finding.
func (d *Diagnostics) AddErr(code string, err error, source, path string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  err.Error(),
		Source:   source,
		Path:     path,
		Err:      err,
	})
}

// AddWarning records a warning about path, optionally with "did you mean"
// candidates.
func (d *Diagnostics) AddWarning(code, message, path string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Path:        path,
		Suggestions: suggestions,
	})
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	out = append(out, d.Errors...)

	return append(out, d.Warnings...)
}

// IsValid reports whether no errors were recorded.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error collapses the error findings into one error, or nil when valid.
// Wrapped causes stay reachable through errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	causes := make([]error, 0, len(d.Errors))

	for _, e := range d.Errors {
		parts = append(parts, e.String())

		if e.Err != nil {
			causes = append(causes, e.Err)
		}
	}

	return &combinedError{msg: strings.Join(parts, "; "), causes: causes}
}

type combinedError struct {
	msg    string
	causes []error
}

func (e *combinedError) Error() string { return e.msg }

func (e *combinedError) Unwrap() []error { return e.causes }

// String formats the finding as "[source] path: [CODE] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Source != "" {
		fmt.Fprintf(&b, "[%s] ", d.Source)
	}

	if d.Path != "" {
		b.WriteString(d.Path + ": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}
