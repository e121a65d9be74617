package ga

import "github.com/katalvlaran/evocore/entity"

// BestOfTwoOne samples two candidates uniformly and keeps the higher-fitness
// one, terminating after OriginalCount * ratio successful picks.
type BestOfTwoOne struct {
	ratio       RatioFn
	drawn, want int
}

// NewBestOfTwoOne constructs a BestOfTwoOne selector keyed to the given ratio.
func NewBestOfTwoOne(ratio RatioFn) *BestOfTwoOne { return &BestOfTwoOne{ratio: ratio} }

// Init implements SelectOne.
func (b *BestOfTwoOne) Init(pop *Population) {
	b.drawn = 0
	b.want = int(float64(pop.OriginalCount()) * b.ratio(pop))
}

func (b *BestOfTwoOne) pick(pop *Population) *entity.Entity {
	n := pop.Len()
	a := pop.EntityAt(pop.rngSource.NextIntn(n))
	c := pop.EntityAt(pop.rngSource.NextIntn(n))
	if fitnessOrNegInf(a) >= fitnessOrNegInf(c) {
		return a
	}
	return c
}

// Next implements SelectOne.
func (b *BestOfTwoOne) Next(pop *Population) (*entity.Entity, bool) {
	if b.drawn >= b.want || pop.Len() == 0 {
		return nil, true
	}
	b.drawn++
	return b.pick(pop), false
}

// BestOfTwoTwo applies the BestOfTwo pick twice, resampling the father up to
// 8 times while it is the mother. If every resample picks the mother again,
// the pair is returned with mother == father.
type BestOfTwoTwo struct {
	ratio       RatioFn
	drawn, want int
	inner       BestOfTwoOne
}

// NewBestOfTwoTwo constructs a BestOfTwoTwo selector keyed to the given ratio.
func NewBestOfTwoTwo(ratio RatioFn) *BestOfTwoTwo { return &BestOfTwoTwo{ratio: ratio} }

// Init implements SelectTwo.
func (b *BestOfTwoTwo) Init(pop *Population) {
	b.drawn = 0
	b.want = int(float64(pop.OriginalCount()) * b.ratio(pop))
}

// Next implements SelectTwo.
func (b *BestOfTwoTwo) Next(pop *Population) (*entity.Entity, *entity.Entity, bool) {
	if b.drawn >= b.want || pop.Len() < 2 {
		return nil, nil, true
	}
	mother := b.inner.pick(pop)
	father := b.inner.pick(pop)
	for attempts := 0; father == mother && attempts < 8; attempts++ {
		father = b.inner.pick(pop)
	}
	b.drawn++
	return mother, father, false
}
