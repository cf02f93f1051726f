package core

import "errors"

var (
	// ErrInvalidDimensions reports a request for a zero-area grid.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds reports a coordinate outside the current grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
