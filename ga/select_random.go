package ga

import "github.com/katalvlaran/evocore/entity"

// RatioFn reads the applicable phase ratio (CrossoverRatio/MutationRatio)
// from a Population's settings at Init time.
type RatioFn func(pop *Population) float64

// CrossoverRatioFn reads Settings.CrossoverRatio.
func CrossoverRatioFn(pop *Population) float64 { return pop.settings.CrossoverRatio }

// MutationRatioFn reads Settings.MutationRatio.
func MutationRatioFn(pop *Population) float64 { return pop.settings.MutationRatio }

// RandomOne draws independent uniform single entities, terminating after
// OriginalCount * ratio successful draws (spec.md §4.6 "Random").
type RandomOne struct {
	ratio       RatioFn
	drawn, want int
}

// NewRandomOne constructs a RandomOne keyed to the given phase ratio.
func NewRandomOne(ratio RatioFn) *RandomOne { return &RandomOne{ratio: ratio} }

// Init implements SelectOne.
func (r *RandomOne) Init(pop *Population) {
	r.drawn = 0
	r.want = int(float64(pop.OriginalCount()) * r.ratio(pop))
}

// Next implements SelectOne.
func (r *RandomOne) Next(pop *Population) (*entity.Entity, bool) {
	if r.drawn >= r.want || pop.Len() == 0 {
		return nil, true
	}
	idx := pop.rngSource.NextIntn(pop.Len())
	r.drawn++
	return pop.EntityAt(idx), false
}

// RandomTwo draws independent uniform entity pairs with no self-pairing,
// terminating after OriginalCount * ratio successful draws.
type RandomTwo struct {
	ratio       RatioFn
	drawn, want int
}

// NewRandomTwo constructs a RandomTwo keyed to the given phase ratio.
func NewRandomTwo(ratio RatioFn) *RandomTwo { return &RandomTwo{ratio: ratio} }

// Init implements SelectTwo.
func (r *RandomTwo) Init(pop *Population) {
	r.drawn = 0
	r.want = int(float64(pop.OriginalCount()) * r.ratio(pop))
}

// Next implements SelectTwo.
func (r *RandomTwo) Next(pop *Population) (*entity.Entity, *entity.Entity, bool) {
	if r.drawn >= r.want || pop.Len() < 2 {
		return nil, nil, true
	}
	idxA := pop.rngSource.NextIntn(pop.Len())
	idxB, err := pop.rngSource.NextExcept(pop.Len(), []int{idxA})
	if err != nil {
		return nil, nil, true
	}
	r.drawn++
	return pop.EntityAt(idxA), pop.EntityAt(idxB), false
}
