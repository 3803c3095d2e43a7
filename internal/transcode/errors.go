package transcode

import "errors"

var (
	ErrRootCount        = errors.New("document must have exactly one top-level key")
	ErrRootNotMapping   = errors.New("top-level value must be a mapping")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrInvalidTag       = errors.New("key is not a valid XML tag")
	ErrCoerce           = errors.New("cannot convert value")
)
