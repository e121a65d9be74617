package ga

import (
	"github.com/katalvlaran/evocore/chromosome"
	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// Mutation perturbs a single entity's genotype in place (spec.md §4.6). The
// population phase pre-populates target as a clone of the selected parent
// (MarkAsInitialised follows); Mutate edits target's DNA directly.
type Mutation interface {
	Mutate(target *entity.Entity) error
}

func randomDirection(source *rng.Source) chromosome.Direction {
	if source.NextIntn(2) == 0 {
		return chromosome.Down
	}
	return chromosome.Up
}

// SingleDrift nudges exactly one gene of one randomly chosen chromosome by
// one drift step in a randomly chosen direction.
type SingleDrift struct{ rng *rng.Source }

// NewSingleDrift constructs a SingleDrift mutation operator.
func NewSingleDrift(source *rng.Source) *SingleDrift { return &SingleDrift{rng: source} }

// Mutate implements Mutation.
func (op *SingleDrift) Mutate(target *entity.Entity) error {
	names := target.DNA().Names()
	if len(names) == 0 {
		return nil
	}
	name := names[op.rng.NextIntn(len(names))]
	chrom, err := target.DNA().Get(name)
	if err != nil {
		return err
	}
	if chrom.Len() == 0 {
		return nil
	}
	idx := op.rng.NextIntn(chrom.Len())
	return chrom.MutateDrift(idx, randomDirection(op.rng))
}

// multiDriftProbability is the per-gene drift chance MultiDrift applies
// once it has committed to a direction for the whole entity (spec.md §4.6).
const multiDriftProbability = 0.47

// MultiDrift chooses one drift direction for the whole entity, then drifts
// every gene of every chromosome by one step in that direction with
// probability 0.47.
type MultiDrift struct{ rng *rng.Source }

// NewMultiDrift constructs a MultiDrift mutation operator.
func NewMultiDrift(source *rng.Source) *MultiDrift { return &MultiDrift{rng: source} }

// Mutate implements Mutation.
func (op *MultiDrift) Mutate(target *entity.Entity) error {
	dir := randomDirection(op.rng)
	for _, name := range target.DNA().Names() {
		chrom, err := target.DNA().Get(name)
		if err != nil {
			return err
		}
		for i := 0; i < chrom.Len(); i++ {
			hit, err := op.rng.RandomProb(multiDriftProbability)
			if err != nil {
				return err
			}
			if !hit {
				continue
			}
			if err := chrom.MutateDrift(i, dir); err != nil {
				return err
			}
		}
	}
	return nil
}

// SingleRandom replaces exactly one gene of one randomly chosen chromosome
// with a fresh uniformly random value.
type SingleRandom struct{ rng *rng.Source }

// NewSingleRandom constructs a SingleRandom mutation operator.
func NewSingleRandom(source *rng.Source) *SingleRandom { return &SingleRandom{rng: source} }

// Mutate implements Mutation.
func (op *SingleRandom) Mutate(target *entity.Entity) error {
	names := target.DNA().Names()
	if len(names) == 0 {
		return nil
	}
	name := names[op.rng.NextIntn(len(names))]
	chrom, err := target.DNA().Get(name)
	if err != nil {
		return err
	}
	if chrom.Len() == 0 {
		return nil
	}
	return chrom.MutateRandom(op.rng.NextIntn(chrom.Len()))
}

// MultiRandom visits every gene of every chromosome and, with 1/3 chance
// each, drifts it up, drifts it down, or leaves it untouched.
type MultiRandom struct{ rng *rng.Source }

// NewMultiRandom constructs a MultiRandom mutation operator.
func NewMultiRandom(source *rng.Source) *MultiRandom { return &MultiRandom{rng: source} }

// Mutate implements Mutation.
func (op *MultiRandom) Mutate(target *entity.Entity) error {
	for _, name := range target.DNA().Names() {
		chrom, err := target.DNA().Get(name)
		if err != nil {
			return err
		}
		for i := 0; i < chrom.Len(); i++ {
			switch op.rng.NextIntn(3) {
			case 0:
				if err := chrom.MutateDrift(i, chromosome.Up); err != nil {
					return err
				}
			case 1:
				if err := chrom.MutateDrift(i, chromosome.Down); err != nil {
					return err
				}
			default:
				// leave untouched
			}
		}
	}
	return nil
}
