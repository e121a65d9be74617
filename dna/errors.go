package dna

import "errors"

var (
	// ErrDuplicateName indicates Add was called twice with the same name.
	ErrDuplicateName = errors.New("dna: duplicate chromosome name")

	// ErrNotFound indicates a requested chromosome name is not present.
	ErrNotFound = errors.New("dna: chromosome not found")
)
