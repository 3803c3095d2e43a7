package xmltree

import (
	"fmt"
	"strconv"
	"strings"

	"mth5meta/internal/match"
)

// Step selects the Index-th child (zero based) tagged Tag.
type Step struct {
	Tag   string
	Index int
}

func (s Step) String() string {
	if s.Index == 0 {
		return s.Tag
	}

	return s.Tag + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is a sequence of steps relative to an element.
type Path struct {
	Steps []Step
}

// ParsePath parses a slash separated element path.
// Supports: "idinfo", "idinfo/citation/citeinfo", "keywords/theme[1]/themekey".
// A step without an index selects the first matching child.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var steps []Step

	for _, part := range strings.Split(path, "/") {
		if part == "" {
			return Path{}, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}

		step := Step{Tag: part}

		// Check for index notation
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return Path{}, fmt.Errorf("%w %q: unterminated index in %q", ErrInvalidPath, path, part)
			}

			idx, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || idx < 0 {
				return Path{}, fmt.Errorf("%w %q: bad index in %q", ErrInvalidPath, path, part)
			}

			step = Step{Tag: part[:open], Index: idx}
		}

		if !IsValidName(step.Tag) {
			return Path{}, fmt.Errorf("%w %q: invalid tag %q", ErrInvalidPath, path, step.Tag)
		}

		steps = append(steps, step)
	}

	return Path{Steps: steps}, nil
}

// MustParsePath is like ParsePath but panics on error. It is meant for
// package level path tables.
func MustParsePath(path string) Path {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}

	return p
}

func (p Path) String() string {
	parts := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		parts[i] = s.String()
	}

	return strings.Join(parts, "/")
}

// Prefix returns the first n steps of p.
func (p Path) Prefix(n int) Path {
	return Path{Steps: p.Steps[:n]}
}

// Child returns p extended by one step.
func (p Path) Child(tag string, index int) Path {
	steps := make([]Step, len(p.Steps), len(p.Steps)+1)
	copy(steps, p.Steps)

	return Path{Steps: append(steps, Step{Tag: tag, Index: index})}
}

// Find resolves a slash separated path below e.
func (e *Element) Find(path string) (*Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	return e.FindPath(p)
}

// FindPath resolves p below e. A step that does not resolve yields a
// *MissingPathError with suggestions drawn from the sibling tags.
func (e *Element) FindPath(p Path) (*Element, error) {
	cur := e

	for depth, step := range p.Steps {
		next, ok := cur.Child(step.Tag, step.Index)
		if !ok {
			mpe := &MissingPathError{
				Path:  p,
				Depth: depth,
				Count: len(cur.ChildrenByTag(step.Tag)),
			}

			if mpe.Count == 0 {
				mpe.Suggestions = match.Suggest(step.Tag, cur.childTags(), 3)
			}

			return nil, mpe
		}

		cur = next
	}

	return cur, nil
}

// IsValidName reports whether s is usable as a tag: a letter or underscore
// followed by letters, digits, "_", "-" or ".".
func IsValidName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' && r != '-' && r != '.' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
