package filter

import "errors"

var (
	// ErrInvalidLength is returned when a buffer's byte length is not a
	// multiple of the configured element width.
	ErrInvalidLength = errors.New("buffer length is not a multiple of element width")

	// ErrUnsupportedWidth is returned when the configured element width is
	// not one of 1, 2, 4 or 8 bytes.
	ErrUnsupportedWidth = errors.New("unsupported element width")

	// ErrInvalidElementSize is returned when a shuffle filter is configured
	// with an element size smaller than one byte.
	ErrInvalidElementSize = errors.New("invalid element size")
)
