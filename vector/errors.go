package vector

import "errors"

var (
	// ErrLengthMismatch indicates two vectors of differing length were combined.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrEmptyVector indicates an operation requires a non-empty vector.
	ErrEmptyVector = errors.New("vector: empty vector")
)
