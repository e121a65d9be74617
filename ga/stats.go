package ga

import (
	"math"

	"github.com/katalvlaran/evocore/entity"
)

// Stats is a read-only snapshot of a population's fitness distribution at
// the moment Population.Stats is called. It mirrors the (avg, stddev, sum)
// computation Roulette already needs internally (spec.md §4.6), exposed as a
// queryable value instead of staying trapped inside the selector.
type Stats struct {
	Generation     int
	PopulationSize int
	BestFitness    float64
	AverageFitness float64
	StdDevFitness  float64
}

// Stats computes the current generation's fitness distribution. Entities
// that have not reached Ready (no cached fitness yet) are excluded from the
// average/stddev/best computation but still counted in PopulationSize.
func (p *Population) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Stats{Generation: p.generation, PopulationSize: len(p.entities)}
	scored := make([]float64, 0, len(p.entities))
	for _, e := range p.entities {
		if f, ok := e.Fitness(); ok {
			scored = append(scored, f)
		}
	}
	if len(scored) == 0 {
		return s
	}

	best, sum := scored[0], 0.0
	for _, f := range scored {
		if f > best {
			best = f
		}
		sum += f
	}
	avg := sum / float64(len(scored))
	var variance float64
	for _, f := range scored {
		d := f - avg
		variance += d * d
	}
	variance /= float64(len(scored))

	s.BestFitness = best
	s.AverageFitness = avg
	s.StdDevFitness = math.Sqrt(variance)
	return s
}

// Snapshot is a deterministic, read-only copy of a population's current
// entities, grounded on the teacher's CloneEmpty/Clone pattern
// (graph/core/types_test.go) — useful for inspection or test assertions
// without risking a caller mutating the live population underneath it.
type Snapshot struct {
	Generation int
	Entities   []*entity.Entity
}

// Snapshot clones every entity in the population into an independent,
// caller-owned copy.
func (p *Population) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entities := make([]*entity.Entity, len(p.entities))
	for i, e := range p.entities {
		entities[i] = e.Clone()
	}
	return Snapshot{Generation: p.generation, Entities: entities}
}
