package metadict

import (
	"errors"
	"fmt"
)

var (
	// ErrStructuralConflict is returned when a flat key path is used both as a
	// leaf and as a branch.
	ErrStructuralConflict = errors.New("structural conflict")
	// ErrAmbiguousKey is returned by a strict Flatten when a key contains the separator.
	ErrAmbiguousKey = errors.New("key contains separator")
)

// ConflictError describes a leaf/branch collision found while structuring.
type ConflictError struct {
	// Path is the segment path at which the collision happened.
	Path Path
	// Key is the flat key that triggered it.
	Key string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %q collides with an existing entry at %q", ErrStructuralConflict, e.Key, e.Path.String())
}

func (e *ConflictError) Unwrap() error {
	return ErrStructuralConflict
}
