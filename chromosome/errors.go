package chromosome

import "errors"

var (
	// ErrIndexOutOfRange indicates a gene index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("chromosome: index out of range")

	// ErrInvalidProbability indicates Seed received a probability outside [0,1].
	ErrInvalidProbability = errors.New("chromosome: probability must be in [0,1]")

	// ErrInvalidBounds indicates a numeric variant was constructed with min >= max.
	ErrInvalidBounds = errors.New("chromosome: min must be < max")

	// ErrTypeMismatch indicates SetValue received the wrong Go type.
	ErrTypeMismatch = errors.New("chromosome: value type mismatch")
)
