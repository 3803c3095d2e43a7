package fgdc

import (
	"errors"
	"fmt"

	"mth5meta/internal/xmltree"
)

var (
	ErrMissingField = errors.New("missing configuration field")
	ErrInvalidField = errors.New("invalid configuration field")
	ErrUnknownKind  = errors.New("unknown group kind")

	// ErrMissingPath is returned, wrapped, when the template lacks an element.
	ErrMissingPath = xmltree.ErrMissingPath
)

// MissingFieldError names a required configuration key by its dotted path.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }
