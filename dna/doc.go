// Package dna implements the order-preserving, case-insensitive name->
// chromosome collection an Entity owns (spec.md §3, §4.3).
//
// Errors:
//
//	ErrDuplicateName - Add was called twice with the same (case-insensitive) name.
//	ErrNotFound       - Get referenced a name that was never added.
package dna
