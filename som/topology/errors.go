package topology

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive width, height or depth was
	// supplied, or a toroidal octagonal/octagonal-prism lattice was asked
	// for with an odd axis length (gridgraph.ErrEmptyGrid/ErrNonRectangular's
	// analogue for this package's lattice shapes).
	ErrInvalidDimension = errors.New("topology: invalid lattice dimension")

	// ErrOutOfRange indicates an index or coordinate outside the lattice.
	ErrOutOfRange = errors.New("topology: index or coordinate out of range")

	// ErrUnresolvedNeighbor indicates a neighbor key was looked up in a
	// LocationMap and not found — a builder/toroidal mismatch.
	ErrUnresolvedNeighbor = errors.New("topology: unresolved neighbor key")
)
