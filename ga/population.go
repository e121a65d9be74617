package ga

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// Population is a single island: a generation-stepping container of entities
// with selection/crossover/mutation/adaption/survival/migration phases, a
// free-entity pool, and an inbound migration queue (spec.md §3, §4.5).
//
// mu guards entities, originalCount, generation, restartRequested and
// freePool; inboundMu separately guards the inbound migration queue so a
// host's background dispatcher can enqueue without contending with the
// generation loop's own bookkeeping (mirrors the teacher's
// per-container-mutex discipline, core/types.go's Graph).
type Population struct {
	islandID uuid.UUID

	mu               sync.RWMutex
	entities         []*entity.Entity
	originalCount    int
	generation       int
	restartRequested bool
	freePool         []*entity.Entity

	inboundMu sync.Mutex
	inbound   []inboundMigrant

	settings  *Settings
	rngSource *rng.Source
}

// NewPopulation constructs a Population, validates settings, and seeds its
// initial entities per Settings.Genesis. Returns ErrInvalidConfiguration if a
// required strategy is missing.
func NewPopulation(settings *Settings, source *rng.Source) (*Population, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	p := &Population{
		islandID:  uuid.New(),
		settings:  settings.Clone(),
		rngSource: source,
	}
	if err := p.seedInitial(); err != nil {
		return nil, err
	}
	return p, nil
}

func validateSettings(s *Settings) error {
	if s == nil || s.SelectOne == nil || s.SelectTwo == nil || s.Crossover == nil ||
		s.Mutate == nil || s.EntityFactory == nil {
		return ErrInvalidConfiguration
	}
	if s.Evolution != Darwin && s.Adaption == nil {
		return ErrInvalidConfiguration
	}
	return nil
}

// newEntity draws from the free pool if non-empty, otherwise allocates via
// Settings.EntityFactory (spec.md §3: "an entity dequeued from the free pool
// is re-marked Created before reuse").
func (p *Population) newEntity() (*entity.Entity, error) {
	p.mu.Lock()
	if n := len(p.freePool); n > 0 {
		e := p.freePool[n-1]
		p.freePool = p.freePool[:n-1]
		p.mu.Unlock()
		e.MarkAsCreated()
		return e, nil
	}
	p.mu.Unlock()
	return p.settings.EntityFactory()
}

func (p *Population) seedInitial() error {
	entities := make([]*entity.Entity, 0, p.settings.StableSize)
	for i := 0; i < p.settings.StableSize; i++ {
		e, err := p.newEntity()
		if err != nil {
			return err
		}
		if err := e.InitEntity(); err != nil {
			return err
		}
		if p.settings.Genesis == GenesisRandom {
			if err := e.DNA().Seed(0.5); err != nil {
				return err
			}
		}
		entities = append(entities, e)
	}
	p.entities = entities
	return nil
}

// IslandID returns this population's stable identifier.
func (p *Population) IslandID() uuid.UUID { return p.islandID }

// Len returns the current entity count.
func (p *Population) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entities)
}

// OriginalCount returns the entity count captured at the start of the
// current generation (spec.md §3).
func (p *Population) OriginalCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.originalCount
}

// Generation returns the current generation counter.
func (p *Population) Generation() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.generation
}

// EntityAt returns the entity at index i. Panics on an out-of-range index,
// matching slice semantics — callers (selectors) only ever index within
// [0, Len()).
func (p *Population) EntityAt(i int) *entity.Entity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entities[i]
}

// RequestRestart flags the population to reinitialize from Settings at the
// end of the current generation (spec.md §4.5 step 10).
func (p *Population) RequestRestart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restartRequested = true
}

// inboundMigrant pairs a migrating entity with the island it departed from,
// so drainInbound can enforce spec.md §4.9's "islandId ≠ thisIslandId" check.
type inboundMigrant struct {
	sourceIslandID uuid.UUID
	entity         *entity.Entity
}

// EnqueueInbound appends a migrating entity to the inbound queue. Called by
// a PopulationHost's dispatcher; safe for concurrent producers (spec.md §5:
// "Inbound migration is a MPSC queue").
func (p *Population) EnqueueInbound(sourceIslandID uuid.UUID, e *entity.Entity) {
	p.inboundMu.Lock()
	defer p.inboundMu.Unlock()
	p.inbound = append(p.inbound, inboundMigrant{sourceIslandID: sourceIslandID, entity: e})
}

func (p *Population) drainInbound() {
	p.inboundMu.Lock()
	queued := p.inbound
	p.inbound = nil
	p.inboundMu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, m := range queued {
		if m.sourceIslandID == p.islandID {
			continue
		}
		p.entities = append(p.entities, m.entity)
	}
}

func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}

// Evolve runs generations until OnGeneration/MaxGenerations says stop, a
// restart loops back to seedInitial, or ctx is cancelled (spec.md §4.5).
// host may be nil, in which case the migration phase only drains inbound.
func (p *Population) Evolve(ctx context.Context, host PopulationHost) error {
	for {
		if p.settings.GenerationHandler != nil && p.generation%p.settings.EvolutionEventInterval == 0 &&
			!p.settings.GenerationHandler(p.generation) {
			return nil
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		p.settings.SelectOne.Init(p)
		p.settings.SelectTwo.Init(p)
		if p.settings.MigrationSelector != nil {
			p.settings.MigrationSelector.Init(p)
		}

		p.mu.Lock()
		p.generation++
		p.originalCount = len(p.entities)
		p.mu.Unlock()

		if err := p.crossoverPhase(); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		if err := p.mutationPhase(); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		if err := p.adaptionPhase(); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		if err := p.survivalPhase(); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		if err := p.migrationPhase(host); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		p.mu.Lock()
		restart := p.restartRequested
		p.mu.Unlock()
		if restart {
			if err := p.seedInitial(); err != nil {
				return err
			}
			p.mu.Lock()
			p.generation = 0
			p.restartRequested = false
			p.mu.Unlock()
			continue
		}

		if !p.settings.SteadyState && p.generation >= p.settings.MaxGenerations {
			return nil
		}
	}
}

// parentPair is one (mother, father) candidate gathered from SelectTwo
// before the physical crossover runs (spec.md §5: "collects all candidate
// pairs on the main thread ... then executes ... in parallel").
type parentPair struct{ mother, father *entity.Entity }

// gatherPairs drains SelectTwo on the calling goroutine.
func (p *Population) gatherPairs() []parentPair {
	var pairs []parentPair
	for {
		mother, father, done := p.settings.SelectTwo.Next(p)
		if done || mother == nil || father == nil {
			break
		}
		pairs = append(pairs, parentPair{mother, father})
	}
	return pairs
}

// gatherParents drains SelectOne on the calling goroutine.
func (p *Population) gatherParents() []*entity.Entity {
	var parents []*entity.Entity
	for {
		parent, done := p.settings.SelectOne.Next(p)
		if done || parent == nil {
			break
		}
		parents = append(parents, parent)
	}
	return parents
}

func (p *Population) crossChildren(pair parentPair) (son, daughter *entity.Entity, err error) {
	son = pair.mother.Clone()
	daughter = pair.father.Clone()
	if err := p.settings.Crossover.Cross(pair.mother, pair.father, son, daughter); err != nil {
		return nil, nil, err
	}
	son.MarkAsInitialised(son.DNA())
	daughter.MarkAsInitialised(daughter.DNA())
	return son, daughter, nil
}

func (p *Population) mutateChild(parent *entity.Entity) (*entity.Entity, error) {
	child := parent.Clone()
	if err := p.settings.Mutate.Mutate(child); err != nil {
		return nil, err
	}
	child.MarkAsInitialised(child.DNA())
	return child, nil
}

func (p *Population) crossoverPhase() error {
	ok, err := p.rngSource.RandomProb(p.settings.CrossoverRatio)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	pairs := p.gatherPairs()
	var children []*entity.Entity
	for _, pair := range pairs {
		son, daughter, err := p.crossChildren(pair)
		if err != nil {
			return err
		}
		children = append(children, son, daughter)
	}
	p.mu.Lock()
	p.entities = append(p.entities, children...)
	p.mu.Unlock()
	return nil
}

func (p *Population) mutationPhase() error {
	ok, err := p.rngSource.RandomProb(p.settings.MutationRatio)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	parents := p.gatherParents()
	var children []*entity.Entity
	for _, parent := range parents {
		child, err := p.mutateChild(parent)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	p.mu.Lock()
	p.entities = append(p.entities, children...)
	p.mu.Unlock()
	return nil
}

// adaptionRange returns the [lo, hi) index range Evolution targets.
func adaptionRange(evolution Evolution, originalCount, count int) (int, int) {
	switch evolution {
	case LamarckParents, BaldwinParents:
		return 0, originalCount
	case LamarckChildren, BaldwinChildren:
		return originalCount, count
	case LamarckAll, BaldwinAll:
		return 0, count
	default:
		return 0, 0
	}
}

func isLamarck(evolution Evolution) bool {
	return evolution == LamarckParents || evolution == LamarckChildren || evolution == LamarckAll
}

func (p *Population) adaptionPhase() error {
	if p.settings.Evolution == Darwin {
		return nil
	}
	p.mu.RLock()
	lo, hi := adaptionRange(p.settings.Evolution, p.originalCount, len(p.entities))
	targets := append([]*entity.Entity(nil), p.entities[lo:hi]...)
	p.mu.RUnlock()

	lamarck := isLamarck(p.settings.Evolution)
	for _, e := range targets {
		bestDNA, bestFitness, err := p.settings.Adaption.Optimize(e, p.settings.MaxAdaptionIterations)
		if err != nil {
			return err
		}
		if lamarck {
			e.MarkAsInitialised(bestDNA)
			if err := e.LoadEntity(); err != nil {
				return err
			}
		}
		e.SetFitness(bestFitness)
		if p.settings.FitnessHandler != nil {
			p.settings.FitnessHandler(e)
		}
	}
	return nil
}

// applyElitism removes parents per Settings.Elitism and returns the
// resulting working slice (spec.md §4.8 step 1). Must be called with p.mu
// held.
func (p *Population) applyElitism() []*entity.Entity {
	switch p.settings.Elitism {
	case ParentsDie:
		if p.originalCount <= len(p.entities) {
			p.entities = append(p.entities[:0:0], p.entities[p.originalCount:]...)
		}
	case OneParentSurvives:
		if p.originalCount >= 1 && p.originalCount <= len(p.entities) {
			survivors := make([]*entity.Entity, 0, len(p.entities)-p.originalCount+1)
			survivors = append(survivors, p.entities[0])
			survivors = append(survivors, p.entities[p.originalCount:]...)
			p.entities = survivors
		}
	}
	return p.entities
}

// evaluateFitness runs LoadEntity/EnsureFitness sequentially over entities
// (spec.md §4.8 step 2). The parallel variant overrides this step only.
func (p *Population) evaluateFitness(entities []*entity.Entity) error {
	for _, e := range entities {
		if err := e.LoadEntity(); err != nil {
			return err
		}
		if _, err := e.EnsureFitness(); err != nil {
			return err
		}
		if p.settings.FitnessHandler != nil {
			p.settings.FitnessHandler(e)
		}
	}
	return nil
}

func (p *Population) survivalPhase() error {
	return p.survivalPhaseWith(p.evaluateFitness)
}

func (p *Population) survivalPhaseWith(evaluate func([]*entity.Entity) error) error {
	p.mu.Lock()
	entities := p.applyElitism()
	p.mu.Unlock()

	if err := evaluate(entities); err != nil {
		return err
	}

	sort.SliceStable(entities, func(i, j int) bool {
		fi, _ := entities[i].Fitness()
		fj, _ := entities[j].Fitness()
		return fi > fj
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(entities) > p.settings.StableSize {
		trimmed := entities[p.settings.StableSize:]
		entities = entities[:p.settings.StableSize]
		for _, e := range trimmed {
			e.MarkAsFree()
			if len(p.freePool) < p.settings.FreePoolCapacity {
				p.freePool = append(p.freePool, e)
			}
		}
	}
	p.entities = entities
	return nil
}

func (p *Population) removeEntity(target *entity.Entity) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, e := range p.entities {
		if e == target {
			p.entities = append(p.entities[:i], p.entities[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Population) migrationPhase(host PopulationHost) error {
	p.drainInbound()

	if host == nil || p.settings.MigrationSelector == nil {
		return nil
	}
	ok, err := p.rngSource.RandomProb(p.settings.MigrationRatio)
	if err != nil {
		return err
	}
	if !ok || !host.CanMigrate() {
		return nil
	}
	candidate, done := p.settings.MigrationSelector.Next(p)
	if done || candidate == nil {
		return nil
	}
	if host.Offer(p.islandID, candidate) {
		p.removeEntity(candidate)
	}
	return nil
}
