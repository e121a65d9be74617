package ga

import "github.com/katalvlaran/evocore/entity"

// RandomRankOne iterates state from 1 upward; with probability
// Settings.MutationRatio it yields the entity at index state.
//
// Termination convention (spec.md §9 Open Question, resolved per DESIGN.md):
// the loop stops once state >= OriginalCount.
type RandomRankOne struct{ state int }

// NewRandomRankOne constructs a RandomRankOne selector.
func NewRandomRankOne() *RandomRankOne { return &RandomRankOne{} }

// Init implements SelectOne.
func (r *RandomRankOne) Init(pop *Population) { r.state = 1 }

// Next implements SelectOne.
func (r *RandomRankOne) Next(pop *Population) (*entity.Entity, bool) {
	for r.state < pop.OriginalCount() {
		cur := r.state
		r.state++
		ok, err := pop.rngSource.RandomProb(pop.settings.MutationRatio)
		if err != nil || !ok {
			continue
		}
		return pop.EntityAt(cur), false
	}
	return nil, true
}

// RandomRankTwo iterates state from 1 upward; with probability
// Settings.CrossoverRatio it pairs the entity at index state with a
// uniformly drawn earlier entity in [0, state).
type RandomRankTwo struct{ state int }

// NewRandomRankTwo constructs a RandomRankTwo selector.
func NewRandomRankTwo() *RandomRankTwo { return &RandomRankTwo{} }

// Init implements SelectTwo.
func (r *RandomRankTwo) Init(pop *Population) { r.state = 1 }

// Next implements SelectTwo.
func (r *RandomRankTwo) Next(pop *Population) (*entity.Entity, *entity.Entity, bool) {
	for r.state < pop.OriginalCount() {
		cur := r.state
		r.state++
		if cur == 0 {
			continue
		}
		ok, err := pop.rngSource.RandomProb(pop.settings.CrossoverRatio)
		if err != nil || !ok {
			continue
		}
		earlier := pop.rngSource.NextIntn(cur)
		return pop.EntityAt(cur), pop.EntityAt(earlier), false
	}
	return nil, nil, true
}
