package align

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrBadAlignLength indicates a non-positive alignment limit.
	ErrBadAlignLength = errors.New("align: alignLength must be > 0")
)
