package ga

import "github.com/katalvlaran/evocore/entity"

// SelectOne is a stateful iterator yielding single entities for the mutation
// phase (spec.md §4.6). Init resets per-generation state; Next yields either
// an entity and false, or (nil, true) once the strategy is done for this
// generation.
type SelectOne interface {
	Init(pop *Population)
	Next(pop *Population) (e *entity.Entity, done bool)
}

// SelectTwo is a stateful iterator yielding entity pairs for the crossover
// phase (spec.md §4.6).
type SelectTwo interface {
	Init(pop *Population)
	Next(pop *Population) (mother, father *entity.Entity, done bool)
}

// fitnessOrNegInf returns e's cached fitness, or negative infinity if the
// entity has not reached Ready — this lets BestOfTwo/Roulette compare
// fitness without erroring out of an interface that has no room for one.
func fitnessOrNegInf(e *entity.Entity) float64 {
	f, ok := e.Fitness()
	if !ok {
		return negInf
	}
	return f
}

const negInf = -1e308
