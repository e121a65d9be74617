package ga

import "errors"

var (
	// ErrShapeMismatch indicates two parents disagree on chromosome count or
	// a named chromosome's length during crossover.
	ErrShapeMismatch = errors.New("ga: parent shape mismatch")

	// ErrInvalidConfiguration indicates NewPopulation was given settings
	// missing a required strategy (e.g. no Crossover operator set, or no
	// Adaption operator while Evolution != Darwin).
	ErrInvalidConfiguration = errors.New("ga: invalid configuration")

	// ErrCancelled indicates the generation loop observed a tripped context.
	ErrCancelled = errors.New("ga: cancelled")

	// ErrDisposed indicates a call was made against a disposed Population or
	// PopulationHost.
	ErrDisposed = errors.New("ga: disposed")

	// ErrUnknownIsland indicates a PopulationHost operation referenced an
	// islandId not present in its island map.
	ErrUnknownIsland = errors.New("ga: unknown island")
)
