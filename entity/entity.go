package entity

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/evocore/dna"
)

// Hooks are the per-entity-kind behaviors the lifecycle drives at each
// transition (spec.md §4.4's "virtual hooks").
type Hooks struct {
	// CreateDNA allocates a fresh DNA bundle for a new entity.
	CreateDNA func() (*dna.DNA, error)
	// LoadFromDNA rebuilds a user phenotype object from DNA.
	LoadFromDNA func(d *dna.DNA) (any, error)
	// EvaluateFitness scores a loaded phenotype.
	EvaluateFitness func(phenotype any) (float64, error)
}

// Entity is one candidate solution: a DNA bundle, a cached fitness score, a
// lifecycle state, a stable id, and an optional user phenotype.
//
// mu guards every mutable field; Entity is safe to EnsureFitness from a
// worker-pool goroutine while the owning Population reads State()/Fitness()
// from its own goroutine (spec.md §5, parallel fitness evaluation).
type Entity struct {
	mu sync.RWMutex

	id    uuid.UUID
	state State
	hooks Hooks

	dna        *dna.DNA
	phenotype  any
	fitness    float64
	fitnessSet bool

	// OnInit and OnLoad fire once per transition into Initialised/Loaded,
	// respectively (spec.md §4.4). Either may be nil.
	OnInit func(*Entity)
	OnLoad func(*Entity)
}

// New constructs an Entity in the Created state with a fresh id.
func New(hooks Hooks) (*Entity, error) {
	if hooks.CreateDNA == nil || hooks.LoadFromDNA == nil || hooks.EvaluateFitness == nil {
		return nil, ErrNilHooks
	}
	return &Entity{id: uuid.New(), state: Created, hooks: hooks}, nil
}

// ID returns the entity's stable identifier.
func (e *Entity) ID() uuid.UUID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.id
}

// State returns the entity's current lifecycle state.
func (e *Entity) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// DNA returns the entity's DNA bundle, or nil before InitEntity / after
// MarkAsFree.
func (e *Entity) DNA() *dna.DNA {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dna
}

// Phenotype returns the entity's user object, or nil before LoadEntity.
func (e *Entity) Phenotype() any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phenotype
}

// Fitness returns the cached score and whether it is valid (state == Ready).
func (e *Entity) Fitness() (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fitness, e.fitnessSet
}

// InitEntity allocates DNA via Hooks.CreateDNA and transitions Created ->
// Initialised. Idempotent: calling it again once past Created is a no-op.
func (e *Entity) InitEntity() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Created {
		return nil
	}
	d, err := e.hooks.CreateDNA()
	if err != nil {
		return err
	}
	e.dna = d
	e.state = Initialised
	if e.OnInit != nil {
		e.OnInit(e)
	}
	return nil
}

// LoadEntity rebuilds the phenotype via Hooks.LoadFromDNA and transitions
// Initialised -> Loaded. Idempotent once past Initialised.
func (e *Entity) LoadEntity() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Initialised {
		if e.state == Loaded || e.state == Ready {
			return nil
		}
	}
	p, err := e.hooks.LoadFromDNA(e.dna)
	if err != nil {
		return err
	}
	e.phenotype = p
	e.state = Loaded
	if e.OnLoad != nil {
		e.OnLoad(e)
	}
	return nil
}

// EnsureFitness evaluates (and caches) the entity's fitness, transitioning
// Loaded -> Ready. It is a pure upgrade path: once Ready, it returns the
// cached score without re-invoking Hooks.EvaluateFitness (spec.md §4.4).
// Returns ErrNotLoaded if the entity has not reached Loaded.
func (e *Entity) EnsureFitness() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Ready {
		return e.fitness, nil
	}
	if e.state != Loaded {
		return 0, ErrNotLoaded
	}
	score, err := e.hooks.EvaluateFitness(e.phenotype)
	if err != nil {
		return 0, err
	}
	e.fitness = score
	e.fitnessSet = true
	e.state = Ready
	return score, nil
}

// SetFitness forces the entity to Ready with the given score. Idempotent:
// calling it again while already Ready simply overwrites the cached score.
func (e *Entity) SetFitness(score float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitness = score
	e.fitnessSet = true
	e.state = Ready
}

// MarkAsInitialised installs a new DNA bundle and forces the state back to
// Initialised, discarding any cached phenotype/fitness. This is how
// crossover, mutation and adaption hand a freshly-combined or freshly-
// mutated genotype back into the lifecycle for re-evaluation — it is not a
// "downgrade" of an existing candidate, it is how a new candidate's DNA gets
// installed (spec.md §4.6: crossover children are "mark[ed] ... Initialised").
func (e *Entity) MarkAsInitialised(d *dna.DNA) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dna = d
	e.phenotype = nil
	e.fitness = 0
	e.fitnessSet = false
	e.state = Initialised
}

// MarkAsFree discards the entity's DNA and phenotype and transitions to Free,
// the state a population's free pool holds reusable entities in.
func (e *Entity) MarkAsFree() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dna != nil {
		e.dna.Dispose()
	}
	e.dna = nil
	e.phenotype = nil
	e.fitness = 0
	e.fitnessSet = false
	e.state = Free
}

// MarkAsCreated reuses a Free entity, resetting it to Created so InitEntity
// can run again. It also assigns a fresh id, since a pooled entity is about
// to become logically distinct new candidate.
func (e *Entity) MarkAsCreated() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = uuid.New()
	e.state = Created
}

// CopyFrom deep-copies other's DNA, fitness, state and phenotype into e.
func (e *Entity) CopyFrom(other *Entity) {
	other.mu.RLock()
	var clonedDNA *dna.DNA
	if other.dna != nil {
		clonedDNA = other.dna.Clone()
	}
	state := other.state
	fitness := other.fitness
	fitnessSet := other.fitnessSet
	phenotype := other.phenotype
	hooks := other.hooks
	other.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.dna = clonedDNA
	e.state = state
	e.fitness = fitness
	e.fitnessSet = fitnessSet
	e.phenotype = phenotype
	e.hooks = hooks
}

// Clone returns a deep copy of e with a fresh id.
func (e *Entity) Clone() *Entity {
	out := &Entity{id: uuid.New()}
	out.CopyFrom(e)
	return out
}
