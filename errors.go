package shape

import "errors"

// Construction errors. Degenerate geometry is never reported as an error;
// see the individual operations for their degenerate results.
var (
	// ErrShortCoordinates is returned when a coordinate list has fewer than
	// two elements.
	ErrShortCoordinates = errors.New("shape: coordinate list needs at least 2 elements")

	// ErrNoVertices is returned when a polygon is built from no points.
	ErrNoVertices = errors.New("shape: polygon needs at least one vertex")

	// ErrNoElements is returned when a path is built from no elements.
	ErrNoElements = errors.New("shape: path needs at least one element")

	// ErrInvalidColor is returned by ParseColor for unrecognised input.
	ErrInvalidColor = errors.New("shape: invalid color")
)
