package ga

import (
	"github.com/katalvlaran/evocore/dna"
	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// Crossover combines mother and father's genotypes into son and daughter.
//
// The population phase pre-populates son as a clone of mother and daughter
// as a clone of father (spec.md §4.6: "children, each a CopyFrom of one
// parent"); Cross mutates son's and daughter's DNA in place, reading from
// mother.DNA()/father.DNA() for whatever segments the operator swaps in from
// the other parent. It must return ErrShapeMismatch if the parents disagree
// on chromosome count or a named chromosome's length.
type Crossover interface {
	Cross(mother, father, son, daughter *entity.Entity) error
}

// matchShape verifies a and b declare the same chromosome names in the same
// order with matching lengths.
func matchShape(a, b *dna.DNA) error {
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		return ErrShapeMismatch
	}
	for i, name := range an {
		if name != bn[i] {
			return ErrShapeMismatch
		}
		ca, _ := a.Get(name)
		cb, _ := b.Get(name)
		if ca.Len() != cb.Len() {
			return ErrShapeMismatch
		}
	}
	return nil
}

// copyGeneRange copies genes [lo, hi) from src into dst at the same indices.
func copyGeneRange(dst, src interface {
	GetValue(int) (any, error)
	SetValue(int, any) error
}, lo, hi int) error {
	for i := lo; i < hi; i++ {
		v, err := src.GetValue(i)
		if err != nil {
			return err
		}
		if err := dst.SetValue(i, v); err != nil {
			return err
		}
	}
	return nil
}

// SinglePoint crosses each named chromosome at one random cut point c in
// [1, L-1]: son = mother[0:c) ++ father[c:L), daughter = father[0:c) ++
// mother[c:L) (spec.md §4.6, scenario S3).
type SinglePoint struct{ rng *rng.Source }

// NewSinglePoint constructs a SinglePoint crossover operator.
func NewSinglePoint(source *rng.Source) *SinglePoint { return &SinglePoint{rng: source} }

// Cross implements Crossover.
func (op *SinglePoint) Cross(mother, father, son, daughter *entity.Entity) error {
	if err := matchShape(mother.DNA(), father.DNA()); err != nil {
		return err
	}
	for _, name := range mother.DNA().Names() {
		motherChrom, _ := mother.DNA().Get(name)
		fatherChrom, _ := father.DNA().Get(name)
		sonChrom, _ := son.DNA().Get(name)
		daughterChrom, _ := daughter.DNA().Get(name)

		length := motherChrom.Len()
		if length < 2 {
			continue // no interior cut point possible; children keep their base parent unchanged
		}
		cut, err := op.rng.NextRange(1, length)
		if err != nil {
			return err
		}
		// son starts as a clone of mother: overwrite [cut, length) from father.
		if err := copyGeneRange(sonChrom, fatherChrom, cut, length); err != nil {
			return err
		}
		// daughter starts as a clone of father: overwrite [cut, length) from mother.
		if err := copyGeneRange(daughterChrom, motherChrom, cut, length); err != nil {
			return err
		}
	}
	return nil
}

// DoublePoint crosses each named chromosome at two distinct cuts c1 < c2 in
// [0, L): children swap the [c1, c2) interior segment and keep the rest.
type DoublePoint struct{ rng *rng.Source }

// NewDoublePoint constructs a DoublePoint crossover operator.
func NewDoublePoint(source *rng.Source) *DoublePoint { return &DoublePoint{rng: source} }

// Cross implements Crossover.
func (op *DoublePoint) Cross(mother, father, son, daughter *entity.Entity) error {
	if err := matchShape(mother.DNA(), father.DNA()); err != nil {
		return err
	}
	for _, name := range mother.DNA().Names() {
		motherChrom, _ := mother.DNA().Get(name)
		fatherChrom, _ := father.DNA().Get(name)
		sonChrom, _ := son.DNA().Get(name)
		daughterChrom, _ := daughter.DNA().Get(name)

		length := motherChrom.Len()
		if length < 2 {
			continue
		}
		c1, err := op.rng.NextRange(0, length)
		if err != nil {
			return err
		}
		c2, err := op.rng.NextExcept(length, []int{c1})
		if err != nil {
			return err
		}
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		// son (clone of mother) takes father's interior; daughter (clone of
		// father) takes mother's interior. Outside [c1,c2) both stay as-is.
		if err := copyGeneRange(sonChrom, fatherChrom, c1, c2); err != nil {
			return err
		}
		if err := copyGeneRange(daughterChrom, motherChrom, c1, c2); err != nil {
			return err
		}
	}
	return nil
}

// Mixing swaps whole chromosomes between children with probability 1/4,
// drawn as rng.NextIntn(4) > 2 (spec.md §4.6).
type Mixing struct{ rng *rng.Source }

// NewMixing constructs a Mixing crossover operator.
func NewMixing(source *rng.Source) *Mixing { return &Mixing{rng: source} }

// Cross implements Crossover.
func (op *Mixing) Cross(mother, father, son, daughter *entity.Entity) error {
	if err := matchShape(mother.DNA(), father.DNA()); err != nil {
		return err
	}
	for _, name := range mother.DNA().Names() {
		if op.rng.NextIntn(4) <= 2 {
			continue // keep as inherited: son has mother's chromosome, daughter has father's
		}
		motherChrom, _ := mother.DNA().Get(name)
		fatherChrom, _ := father.DNA().Get(name)
		sonChrom, _ := son.DNA().Get(name)
		daughterChrom, _ := daughter.DNA().Get(name)
		if err := copyGeneRange(sonChrom, fatherChrom, 0, fatherChrom.Len()); err != nil {
			return err
		}
		if err := copyGeneRange(daughterChrom, motherChrom, 0, motherChrom.Len()); err != nil {
			return err
		}
	}
	return nil
}
