package ga

import "github.com/katalvlaran/evocore/entity"

// EveryOne enumerates each entity exactly once per generation.
type EveryOne struct{ idx int }

// NewEveryOne constructs an EveryOne selector.
func NewEveryOne() *EveryOne { return &EveryOne{} }

// Init implements SelectOne.
func (e *EveryOne) Init(pop *Population) { e.idx = 0 }

// Next implements SelectOne.
func (e *EveryOne) Next(pop *Population) (*entity.Entity, bool) {
	if e.idx >= pop.Len() {
		return nil, true
	}
	out := pop.EntityAt(e.idx)
	e.idx++
	return out, false
}

// EveryTwo enumerates every ordered pair (i,j), i != j, exactly once.
type EveryTwo struct{ i, j int }

// NewEveryTwo constructs an EveryTwo selector.
func NewEveryTwo() *EveryTwo { return &EveryTwo{} }

// Init implements SelectTwo.
func (e *EveryTwo) Init(pop *Population) { e.i, e.j = 0, 0 }

// Next implements SelectTwo.
func (e *EveryTwo) Next(pop *Population) (*entity.Entity, *entity.Entity, bool) {
	n := pop.Len()
	for {
		if e.i >= n {
			return nil, nil, true
		}
		if e.j >= n {
			e.i++
			e.j = 0
			continue
		}
		if e.j == e.i {
			e.j++
			continue
		}
		mother, father := pop.EntityAt(e.i), pop.EntityAt(e.j)
		e.j++
		return mother, father, false
	}
}
