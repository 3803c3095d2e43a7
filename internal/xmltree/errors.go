package xmltree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingPath   = errors.New("missing path")
	ErrInvalidPath   = errors.New("invalid path")
	ErrNoRoot        = errors.New("document has no root element")
	ErrMultipleRoots = errors.New("document has more than one root element")
)

// MissingPathError reports the first step of a path that did not resolve.
type MissingPathError struct {
	Path Path
	// Depth is the index of the failing step in Path.Steps.
	Depth int
	// Count is the number of children carrying the failing step's tag.
	Count int
	// Suggestions are sibling tags close to the missing one.
	Suggestions []string
}

func (e *MissingPathError) Error() string {
	step := e.Path.Steps[e.Depth]
	parent := e.Path.Prefix(e.Depth).String()
	if parent == "" {
		parent = "root"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %q: ", ErrMissingPath, e.Path.String())

	if e.Count > 0 {
		fmt.Fprintf(&b, "%s has %d <%s> children, index %d requested", parent, e.Count, step.Tag, step.Index)
	} else {
		fmt.Fprintf(&b, "no <%s> under %s", step.Tag, parent)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *MissingPathError) Unwrap() error { return ErrMissingPath }
