package network

import "errors"

var (
	// ErrEmptyLayer indicates a DistanceLayer was built with zero neurons.
	ErrEmptyLayer = errors.New("network: empty distance layer")
)
