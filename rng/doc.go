// Package rng provides a single thread-safe pseudorandom source shared by the
// GA and SOM engines.
//
// All methods serialize through an internal mutex, so a *Source can be shared
// freely across goroutines — the same contract the GA engine relies on when
// multiple islands or a parallel population draw from it concurrently.
//
// Errors:
//
//	ErrInvalidProbability - a probability argument lies outside [0,1].
//	ErrInvalidRange       - min >= max passed to NextRange (NextIntn panics on max <= 0).
//	ErrDuplicateExcluded  - NextExcept received a non-distinct excluded set.
//	ErrExhaustedRange     - NextExcept has no value left to draw.
package rng
