package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid was requested with no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row")
	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,rows).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadWidth indicates a pixel width too small to give every cell a pixel.
	ErrBadWidth = errors.New("gridgraph: width must be at least the number of rows")
	// ErrInvalidDensity indicates a scatter density outside [0,1].
	ErrInvalidDensity = errors.New("gridgraph: density must lie in [0,1]")
	// ErrOccupied indicates a placement onto the other endpoint.
	ErrOccupied = errors.New("gridgraph: cell already holds the other endpoint")
)
