// Package ga implements the island-model genetic algorithm engine: Population
// (the per-island generation loop), PopulationHost (multi-island
// orchestration and migration), and the pluggable selection, crossover,
// mutation and survival strategies spec.md §4 and §6 describe.
//
// Configuration follows the teacher's functional-options pattern
// (builder.BuilderOption in katalvlaran/lvlath): Settings is built with
// New(opts...), where each Option validates and panics on a programmer error
// (nil strategy, non-positive size) while runtime errors (cancellation,
// shape mismatches between parents) are returned, never panicked.
//
// Errors:
//
//	ErrShapeMismatch      - parents disagree on chromosome count/length during crossover.
//	ErrInvalidConfiguration - NewPopulation was given settings missing a required strategy.
//	ErrCancelled           - the generation loop observed a tripped context.
//	ErrDisposed            - a call was made against a disposed Population/Host.
package ga
