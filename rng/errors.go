package rng

import "errors"

// Sentinel errors for the rng package. Callers MUST use errors.Is to branch.
var (
	// ErrInvalidProbability indicates a probability argument outside [0,1].
	ErrInvalidProbability = errors.New("rng: probability must be in [0,1]")

	// ErrInvalidRange indicates a malformed [min,max) range.
	ErrInvalidRange = errors.New("rng: invalid range")

	// ErrDuplicateExcluded indicates NextExcept received repeated values.
	ErrDuplicateExcluded = errors.New("rng: excluded values must be distinct")

	// ErrExhaustedRange indicates NextExcept was asked to draw from an empty
	// allowed set (len(excluded) >= max).
	ErrExhaustedRange = errors.New("rng: no value left to draw")
)
