package ga

import (
	"math"

	"github.com/katalvlaran/evocore/entity"
)

// rouletteStats holds the (avg, stddev, sum) computed once per generation,
// plus the stochastic-universal-sampling pointer/index state used to walk
// the population cyclically (spec.md §4.6 "Roulette").
type rouletteStats struct {
	avg, stddev, sum float64
	pointer          float64
	idx              int
	computed         bool
}

func (r *rouletteStats) init(pop *Population) {
	n := pop.Len()
	r.idx = 0
	r.computed = false
	if n == 0 {
		r.avg, r.stddev, r.sum = 0, 0, 0
		return
	}
	var sum float64
	for i := 0; i < n; i++ {
		f, _ := pop.EntityAt(i).Fitness()
		sum += f
	}
	avg := sum / float64(n)
	var variance float64
	for i := 0; i < n; i++ {
		f, _ := pop.EntityAt(i).Fitness()
		d := f - avg
		variance += d * d
	}
	variance /= float64(n)
	r.sum, r.avg, r.stddev = sum, avg, math.Sqrt(variance)
	r.computed = true
	if r.avg != 0 {
		r.pointer = pop.rngSource.NextFloat64() * r.avg
	}
}

// pick walks the population cyclically from idx, accumulating fitness until
// it crosses pointer, then advances pointer by one average-fitness step
// (wrapping modulo sum), matching a stochastic-universal-sampling rotation.
func (r *rouletteStats) pick(pop *Population) *entity.Entity {
	n := pop.Len()
	if n == 0 {
		return nil
	}
	acc := 0.0
	for i := 0; i < n; i++ {
		e := pop.EntityAt(r.idx % n)
		f, _ := e.Fitness()
		acc += f
		r.idx++
		if acc >= r.pointer {
			r.pointer += r.avg
			if r.sum > 0 {
				for r.pointer > r.sum {
					r.pointer -= r.sum
				}
			}
			return e
		}
	}
	// Degenerate case (all-zero or negative fitness): fall back to the next
	// entity in rotation rather than returning nil.
	e := pop.EntityAt(r.idx % n)
	r.idx++
	return e
}

// RouletteOne selects single entities via stochastic-universal-sampling
// rotation, terminating after OriginalCount * ratio picks.
type RouletteOne struct {
	ratio       RatioFn
	stats       rouletteStats
	drawn, want int
}

// NewRouletteOne constructs a RouletteOne selector keyed to the given ratio.
func NewRouletteOne(ratio RatioFn) *RouletteOne { return &RouletteOne{ratio: ratio} }

// Init implements SelectOne.
func (r *RouletteOne) Init(pop *Population) {
	r.drawn = 0
	r.want = int(float64(pop.OriginalCount()) * r.ratio(pop))
	r.stats.init(pop)
}

// Next implements SelectOne.
func (r *RouletteOne) Next(pop *Population) (*entity.Entity, bool) {
	if r.drawn >= r.want || pop.Len() == 0 {
		return nil, true
	}
	r.drawn++
	return r.stats.pick(pop), false
}

// RouletteTwo selects entity pairs via the same rotation, resampling the
// father up to 8 times while it is the mother. If every resample picks the
// mother again, the pair is returned with mother == father.
type RouletteTwo struct {
	ratio       RatioFn
	stats       rouletteStats
	drawn, want int
}

// NewRouletteTwo constructs a RouletteTwo selector keyed to the given ratio.
func NewRouletteTwo(ratio RatioFn) *RouletteTwo { return &RouletteTwo{ratio: ratio} }

// Init implements SelectTwo.
func (r *RouletteTwo) Init(pop *Population) {
	r.drawn = 0
	r.want = int(float64(pop.OriginalCount()) * r.ratio(pop))
	r.stats.init(pop)
}

// Next implements SelectTwo.
func (r *RouletteTwo) Next(pop *Population) (*entity.Entity, *entity.Entity, bool) {
	if r.drawn >= r.want || pop.Len() < 2 {
		return nil, nil, true
	}
	mother := r.stats.pick(pop)
	father := r.stats.pick(pop)
	for attempts := 0; father == mother && attempts < 8; attempts++ {
		father = r.stats.pick(pop)
	}
	r.drawn++
	return mother, father, false
}
