package ga

import (
	"context"
	"sync"

	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// ParallelPopulation pools work across a configurable thread count during
// fitness evaluation, crossover and mutation (spec.md §5). Candidate
// gathering (draining SelectTwo/SelectOne) always happens on the calling
// goroutine — only the physical operator application and fitness scoring
// run concurrently, then results are appended back on the calling goroutine.
type ParallelPopulation struct {
	*Population
	threadCount int
}

// NewParallelPopulation constructs a ParallelPopulation from ParallelSettings,
// falling back to DefaultThreadCount if ThreadCount is non-positive.
func NewParallelPopulation(settings *ParallelSettings, source *rng.Source) (*ParallelPopulation, error) {
	base, err := NewPopulation(&settings.Settings, source)
	if err != nil {
		return nil, err
	}
	threadCount := settings.ThreadCount
	if threadCount <= 0 {
		threadCount = DefaultThreadCount
	}
	return &ParallelPopulation{Population: base, threadCount: threadCount}, nil
}

// runPool executes fn(0..n) across up to threadCount goroutines at a time,
// returning the first error observed (order not guaranteed among
// concurrent failures).
func runPool(threadCount, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if threadCount < 1 {
		threadCount = 1
	}
	sem := make(chan struct{}, threadCount)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(i); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Evolve mirrors Population.Evolve's phase order, substituting the parallel
// crossover/mutation/fitness-evaluation phases (spec.md §4.5, §5).
func (pp *ParallelPopulation) Evolve(ctx context.Context, host PopulationHost) error {
	p := pp.Population
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

		if err := pp.crossoverPhaseParallel(); err != nil {
			return err
		}
		if err := checkCancel(ctx); err != nil {
			return err
		}

		if err := pp.mutationPhaseParallel(); err != nil {
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

		if err := pp.survivalPhaseParallel(); err != nil {
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

func (pp *ParallelPopulation) crossoverPhaseParallel() error {
	p := pp.Population
	ok, err := p.rngSource.RandomProb(p.settings.CrossoverRatio)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	pairs := p.gatherPairs()
	sons := make([]*entity.Entity, len(pairs))
	daughters := make([]*entity.Entity, len(pairs))
	err = runPool(pp.threadCount, len(pairs), func(i int) error {
		son, daughter, err := p.crossChildren(pairs[i])
		if err != nil {
			return err
		}
		sons[i], daughters[i] = son, daughter
		return nil
	})
	if err != nil {
		return err
	}
	p.mu.Lock()
	for i := range pairs {
		p.entities = append(p.entities, sons[i], daughters[i])
	}
	p.mu.Unlock()
	return nil
}

func (pp *ParallelPopulation) mutationPhaseParallel() error {
	p := pp.Population
	ok, err := p.rngSource.RandomProb(p.settings.MutationRatio)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	parents := p.gatherParents()
	children := make([]*entity.Entity, len(parents))
	err = runPool(pp.threadCount, len(parents), func(i int) error {
		child, err := p.mutateChild(parents[i])
		if err != nil {
			return err
		}
		children[i] = child
		return nil
	})
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.entities = append(p.entities, children...)
	p.mu.Unlock()
	return nil
}

func (pp *ParallelPopulation) survivalPhaseParallel() error {
	p := pp.Population
	return p.survivalPhaseWith(func(entities []*entity.Entity) error {
		return runPool(pp.threadCount, len(entities), func(i int) error {
			e := entities[i]
			if e.State() == entity.Ready {
				return nil
			}
			if err := e.LoadEntity(); err != nil {
				return err
			}
			if _, err := e.EnsureFitness(); err != nil {
				return err
			}
			if p.settings.FitnessHandler != nil {
				p.settings.FitnessHandler(e)
			}
			return nil
		})
	})
}
