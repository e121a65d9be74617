// Package chromosome implements the GA engine's gene-sequence primitive as a
// tagged variant behind a shared Chromosome interface (spec.md §9's redesign
// note): Bool, Char, Short, Int and Double concrete types, plus an orthogonal
// Locking decorator that freezes individual gene indices.
//
// Every concrete type shares: Len, Clone, Equals, Seed, MutateDrift,
// MutateRandom, GetValue/SetValue. Numeric variants additionally enforce
// [min,max] bounds on every stored gene (spec.md §3 invariant).
//
// Errors:
//
//	ErrIndexOutOfRange   - a gene index is outside [0, Len()).
//	ErrInvalidProbability - Seed received a probability outside [0,1].
//	ErrInvalidBounds      - a numeric variant was constructed with min >= max.
//	ErrTypeMismatch       - SetValue received a value of the wrong Go type.
package chromosome
