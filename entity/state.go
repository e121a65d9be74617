package entity

// State is a point in the entity lifecycle (spec.md §4.4).
type State int

const (
	// Created is the entity's initial state, and the state it returns to
	// when reused from a population's free pool.
	Created State = iota
	// Initialised means DNA has been allocated via Hooks.CreateDNA.
	Initialised
	// Loaded means the phenotype has been rebuilt from DNA via Hooks.LoadFromDNA.
	Loaded
	// Ready means a fitness score is cached.
	Ready
	// Free means the entity has been returned to a population's pool; its
	// DNA has been discarded.
	Free
)

// String implements fmt.Stringer for readable test failures and logs.
func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Initialised:
		return "Initialised"
	case Loaded:
		return "Loaded"
	case Ready:
		return "Ready"
	case Free:
		return "Free"
	default:
		return "Unknown"
	}
}
