package field

import "errors"

var (
	// ErrResolution indicates fewer than two samples per axis.
	ErrResolution = errors.New("field: resolution must be at least 2")

	// ErrExtent indicates a non-positive or non-finite grid half-width.
	ErrExtent = errors.New("field: extent must be positive and finite")
)
