package ga

import "github.com/katalvlaran/evocore/entity"

// Genesis selects how a Population seeds its initial entities (spec.md §6).
type Genesis int

const (
	// GenesisRandom seeds every initial entity's DNA uniformly at random.
	GenesisRandom Genesis = iota
	// GenesisSoup leaves seeding to EntityFactory, which is expected to draw
	// from a pre-built pool ("soup") of candidate genotypes.
	GenesisSoup
	// GenesisUser leaves seeding entirely to EntityFactory/Hooks.CreateDNA.
	GenesisUser
)

// Evolution selects the adaption writeback mode (spec.md §4.7).
type Evolution int

const (
	// Darwin performs no adaption pass.
	Darwin Evolution = iota
	// LamarckParents adapts entities in [0, OriginalCount) and writes the
	// improved genotype back.
	LamarckParents
	// LamarckChildren adapts entities in [OriginalCount, count) and writes
	// the improved genotype back.
	LamarckChildren
	// LamarckAll adapts every entity and writes the improved genotype back.
	LamarckAll
	// BaldwinParents adapts entities in [0, OriginalCount) and writes back
	// only the improved fitness score, leaving genotype untouched.
	BaldwinParents
	// BaldwinChildren adapts entities in [OriginalCount, count) and writes
	// back only the improved fitness score.
	BaldwinChildren
	// BaldwinAll adapts every entity and writes back only the improved
	// fitness score.
	BaldwinAll
)

// Elitism selects how parents fare during the survival phase (spec.md §4.8).
type Elitism int

const (
	// ElitismNone leaves parents in place to compete with children on fitness.
	ElitismNone Elitism = iota
	// ParentsSurvive is semantically identical to ElitismNone: parents are
	// never forcibly removed before the fitness sort.
	ParentsSurvive
	// OneParentSurvives removes all but the first parent before the sort.
	OneParentSurvives
	// ParentsDie removes every parent before the sort, guaranteeing only
	// children survive.
	ParentsDie
	// RescoreParents leaves parents in place; EnsureFitness still runs on
	// them (this is the same observable behavior as ElitismNone at the
	// Population level, since EnsureFitness always runs before the sort —
	// the distinction matters only to a caller supplying a fitness function
	// whose result can change between calls).
	RescoreParents
)

// Settings configures a Population's behavior. Construct with New(opts...);
// every Option validates and panics on a programmer error (nil strategy,
// non-positive size), following the teacher's builder.BuilderOption
// convention (katalvlaran/lvlath builder/options.go).
type Settings struct {
	StableSize             int
	MaxGenerations         int
	SteadyState            bool
	EvolutionEventInterval int
	CrossoverRatio         float64
	MutationRatio          float64
	MigrationRatio         float64
	Genesis                Genesis
	Evolution              Evolution
	Elitism                Elitism
	MaxAdaptionIterations  int
	FreePoolCapacity       int

	SelectOne          SelectOne
	SelectTwo          SelectTwo
	MigrationSelector  SelectOne
	Crossover          Crossover
	Mutate             Mutation
	Adaption           Optimizer
	EntityFactory      func() (*entity.Entity, error)
	GenerationHandler  func(generation int) bool
	FitnessHandler     func(e *entity.Entity)
	UserState          any
}

// Option mutates a Settings during construction.
type Option func(*Settings)

const (
	defaultStableSize             = 100
	defaultMaxGenerations          = 100
	defaultEvolutionEventInterval = 10
	defaultCrossoverRatio         = 0.75
	defaultMutationRatio          = 0.2
	defaultMigrationRatio         = 0.1
	defaultMaxAdaptionIterations  = 20
	defaultFreePoolCapacity       = 5000
	// DefaultThreadCount is ParallelSettings' default worker count.
	DefaultThreadCount = 4
)

// New builds a Settings from deterministic defaults plus opts, applied in
// order (later options override earlier ones).
func New(opts ...Option) *Settings {
	s := &Settings{
		StableSize:             defaultStableSize,
		MaxGenerations:         defaultMaxGenerations,
		EvolutionEventInterval: defaultEvolutionEventInterval,
		CrossoverRatio:         defaultCrossoverRatio,
		MutationRatio:          defaultMutationRatio,
		MigrationRatio:         defaultMigrationRatio,
		MaxAdaptionIterations:  defaultMaxAdaptionIterations,
		FreePoolCapacity:       defaultFreePoolCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clone returns a shallow copy of s — Population owns a private settings
// object per spec.md §3 ("a settings object (cloned on assignment)"). The
// pluggable strategies are shared by reference; they are free of per-call
// mutable state beyond what Init() resets at the top of each generation.
func (s *Settings) Clone() *Settings {
	clone := *s
	return &clone
}

// WithStableSize sets the survivor count target. Panics if n <= 0.
func WithStableSize(n int) Option {
	if n <= 0 {
		panic("ga: WithStableSize(n<=0)")
	}
	return func(s *Settings) { s.StableSize = n }
}

// WithMaxGenerations sets the non-steady-state generation cap. Panics if n <= 0.
func WithMaxGenerations(n int) Option {
	if n <= 0 {
		panic("ga: WithMaxGenerations(n<=0)")
	}
	return func(s *Settings) { s.MaxGenerations = n }
}

// WithSteadyState bypasses MaxGenerations when true.
func WithSteadyState(b bool) Option {
	return func(s *Settings) { s.SteadyState = b }
}

// WithEvolutionEventInterval sets how often GenerationHandler fires. Panics if n <= 0.
func WithEvolutionEventInterval(n int) Option {
	if n <= 0 {
		panic("ga: WithEvolutionEventInterval(n<=0)")
	}
	return func(s *Settings) { s.EvolutionEventInterval = n }
}

func requireProbability(name string, p float64) {
	if p < 0 || p > 1 {
		panic("ga: " + name + " must be in [0,1]")
	}
}

// WithCrossoverRatio sets the crossover phase gate/target ratio. Panics if
// outside [0,1].
func WithCrossoverRatio(p float64) Option {
	requireProbability("WithCrossoverRatio", p)
	return func(s *Settings) { s.CrossoverRatio = p }
}

// WithMutationRatio sets the mutation phase gate/target ratio. Panics if
// outside [0,1].
func WithMutationRatio(p float64) Option {
	requireProbability("WithMutationRatio", p)
	return func(s *Settings) { s.MutationRatio = p }
}

// WithMigrationRatio sets the migration phase gate ratio. Panics if outside [0,1].
func WithMigrationRatio(p float64) Option {
	requireProbability("WithMigrationRatio", p)
	return func(s *Settings) { s.MigrationRatio = p }
}

// WithGenesis sets the initial-seeding strategy.
func WithGenesis(g Genesis) Option {
	return func(s *Settings) { s.Genesis = g }
}

// WithEvolution sets the adaption writeback mode.
func WithEvolution(e Evolution) Option {
	return func(s *Settings) { s.Evolution = e }
}

// WithElitism sets the survival-phase parent-handling mode.
func WithElitism(e Elitism) Option {
	return func(s *Settings) { s.Elitism = e }
}

// WithMaxAdaptionIterations sets the adaption iteration cap. Panics if n <= 0.
func WithMaxAdaptionIterations(n int) Option {
	if n <= 0 {
		panic("ga: WithMaxAdaptionIterations(n<=0)")
	}
	return func(s *Settings) { s.MaxAdaptionIterations = n }
}

// WithFreePoolCapacity sets the free-entity pool's soft capacity. Panics if n < 0.
func WithFreePoolCapacity(n int) Option {
	if n < 0 {
		panic("ga: WithFreePoolCapacity(n<0)")
	}
	return func(s *Settings) { s.FreePoolCapacity = n }
}

// WithSelectOne wires the SelectOne strategy (mutation parent selection).
// Panics if strategy is nil.
func WithSelectOne(strategy SelectOne) Option {
	if strategy == nil {
		panic("ga: WithSelectOne(nil)")
	}
	return func(s *Settings) { s.SelectOne = strategy }
}

// WithSelectTwo wires the SelectTwo strategy (crossover parent-pair
// selection). Panics if strategy is nil.
func WithSelectTwo(strategy SelectTwo) Option {
	if strategy == nil {
		panic("ga: WithSelectTwo(nil)")
	}
	return func(s *Settings) { s.SelectTwo = strategy }
}

// WithMigrationSelector wires the outbound-migration entity picker. Panics
// if strategy is nil.
func WithMigrationSelector(strategy SelectOne) Option {
	if strategy == nil {
		panic("ga: WithMigrationSelector(nil)")
	}
	return func(s *Settings) { s.MigrationSelector = strategy }
}

// WithCrossover wires the crossover operator. Panics if op is nil.
func WithCrossover(op Crossover) Option {
	if op == nil {
		panic("ga: WithCrossover(nil)")
	}
	return func(s *Settings) { s.Crossover = op }
}

// WithMutation wires the mutation operator. Panics if op is nil.
func WithMutation(op Mutation) Option {
	if op == nil {
		panic("ga: WithMutation(nil)")
	}
	return func(s *Settings) { s.Mutate = op }
}

// WithAdaption wires the local-search adaption operator. A nil op is valid
// and means "no adaption available"; it is only an error (ErrInvalidConfiguration)
// to leave this nil while Evolution != Darwin.
func WithAdaption(op Optimizer) Option {
	return func(s *Settings) { s.Adaption = op }
}

// WithEntityFactory wires the constructor Population uses to create and
// refill entities. Panics if factory is nil.
func WithEntityFactory(factory func() (*entity.Entity, error)) Option {
	if factory == nil {
		panic("ga: WithEntityFactory(nil)")
	}
	return func(s *Settings) { s.EntityFactory = factory }
}

// WithGenerationHandler wires the per-generation observer callback.
func WithGenerationHandler(fn func(generation int) bool) Option {
	return func(s *Settings) { s.GenerationHandler = fn }
}

// WithFitnessHandler wires the per-entity fitness observer callback.
func WithFitnessHandler(fn func(e *entity.Entity)) Option {
	return func(s *Settings) { s.FitnessHandler = fn }
}

// WithUserState attaches an opaque pointer threaded through to hooks.
func WithUserState(state any) Option {
	return func(s *Settings) { s.UserState = state }
}

// ParallelSettings extends Settings with the worker-pool size the parallel
// Population variant uses for fitness evaluation, crossover and mutation
// (spec.md §6, TplPopulationSettings).
type ParallelSettings struct {
	Settings
	ThreadCount int
}

// NewParallel builds a ParallelSettings from New(opts...) plus a default
// ThreadCount of 4.
func NewParallel(opts ...Option) *ParallelSettings {
	return &ParallelSettings{Settings: *New(opts...), ThreadCount: DefaultThreadCount}
}

// WithThreadCount sets the worker-pool size. Panics if n <= 0.
func (ps *ParallelSettings) WithThreadCount(n int) *ParallelSettings {
	if n <= 0 {
		panic("ga: WithThreadCount(n<=0)")
	}
	ps.ThreadCount = n
	return ps
}
