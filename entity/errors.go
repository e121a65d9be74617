package entity

import "errors"

var (
	// ErrNotLoaded indicates EnsureFitness was called before the entity
	// reached the Loaded state.
	ErrNotLoaded = errors.New("entity: not loaded")

	// ErrNilHooks indicates an entity was constructed without the hooks its
	// lifecycle needs to drive.
	ErrNilHooks = errors.New("entity: hooks must not be nil")
)
