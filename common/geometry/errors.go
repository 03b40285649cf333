package geometry

import "github.com/pkg/errors"

var (
	// ErrDegenerate is returned for zero-length vectors, coincident segment
	// endpoints and polygons with too few vertices.
	ErrDegenerate = errors.New("geometry: degenerate input")

	ErrNotFound = errors.New("geometry: element not found")

	// ErrCrossingObstacles is returned by Collection.Validate when two obstacle
	// segments cross other than at a shared endpoint.
	ErrCrossingObstacles = errors.New("geometry: obstacles cross")
)
