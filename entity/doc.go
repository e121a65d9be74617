// Package entity implements the GA engine's candidate-solution lifecycle
// (spec.md §3, §4.4): a DNA bundle, a cached fitness score, a monotonic
// state machine (Created -> Initialised -> Loaded -> Ready, with Free as the
// pool-reuse state), and a stable identifier.
//
// The three "virtual hooks" the original design relies on (CreateDna,
// LoadFromDna, EvaluateFitness) are plain function fields on Hooks, following
// Go's preference for composition over inheritance — spec.md §9's own
// redesign note for this exact pattern.
//
// Errors:
//
//	ErrNotLoaded - EnsureFitness was called before LoadEntity succeeded.
package entity
