package chromosome

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/evocore/rng"
)

// integerChromosome is the shared implementation behind the Short (int16)
// and Int (int32) variants: both are bounded integers whose drift mutation
// wraps at [min,max] and whose explicit Set clamps into [min,max].
type integerChromosome[T constraints.Signed] struct {
	genes    []T
	min, max T
	rng      *rng.Source
}

func newIntegerChromosome[T constraints.Signed](length int, min, max T, source *rng.Source) (*integerChromosome[T], error) {
	if min >= max {
		return nil, ErrInvalidBounds
	}
	return &integerChromosome[T]{genes: make([]T, length), min: min, max: max, rng: source}, nil
}

// Len implements Chromosome.
func (c *integerChromosome[T]) Len() int { return len(c.genes) }

// Clone implements Chromosome.
func (c *integerChromosome[T]) Clone() Chromosome {
	out := &integerChromosome[T]{genes: make([]T, len(c.genes)), min: c.min, max: c.max, rng: c.rng}
	copy(out.genes, c.genes)
	return out
}

// Equals implements Chromosome.
func (c *integerChromosome[T]) Equals(other Chromosome) bool {
	o, ok := other.(*integerChromosome[T])
	if !ok || len(o.genes) != len(c.genes) {
		return false
	}
	for i, g := range c.genes {
		if o.genes[i] != g {
			return false
		}
	}
	return true
}

// Seed draws every gene uniformly from [min, max].
func (c *integerChromosome[T]) Seed(_ float64) error {
	for i := range c.genes {
		v, err := c.rng.NextRange(int(c.min), int(c.max)+1)
		if err != nil {
			return err
		}
		c.genes[i] = T(v)
	}
	return nil
}

// MutateDrift steps the gene at index by ±1, wrapping at [min,max].
func (c *integerChromosome[T]) MutateDrift(index int, dir Direction) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	g := c.genes[index]
	if dir == Up {
		if g >= c.max {
			g = c.min
		} else {
			g++
		}
	} else {
		if g <= c.min {
			g = c.max
		} else {
			g--
		}
	}
	c.genes[index] = g
	return nil
}

// MutateRandom replaces the gene at index with a fresh uniform draw.
func (c *integerChromosome[T]) MutateRandom(index int) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	v, err := c.rng.NextRange(int(c.min), int(c.max)+1)
	if err != nil {
		return err
	}
	c.genes[index] = T(v)
	return nil
}

// Get returns the gene at index.
func (c *integerChromosome[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.genes) {
		return 0, ErrIndexOutOfRange
	}
	return c.genes[index], nil
}

// Set assigns the gene at index, clamping into [min,max].
func (c *integerChromosome[T]) Set(index int, value T) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = c.bound(value)
	return nil
}

func (c *integerChromosome[T]) bound(v T) T {
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

// GetValue implements Chromosome.
func (c *integerChromosome[T]) GetValue(index int) (any, error) { return c.Get(index) }

// SetValue implements Chromosome.
func (c *integerChromosome[T]) SetValue(index int, value any) error {
	v, ok := value.(T)
	if !ok {
		return ErrTypeMismatch
	}
	return c.Set(index, v)
}

// Resize implements Chromosome.
func (c *integerChromosome[T]) Resize(newLength int) {
	out := make([]T, newLength)
	copy(out, c.genes)
	c.genes = out
}

// Min returns the chromosome's lower bound.
func (c *integerChromosome[T]) Min() T { return c.min }

// Max returns the chromosome's upper bound.
func (c *integerChromosome[T]) Max() T { return c.max }

// Short is a chromosome of int16 genes bounded by [min,max].
type Short = integerChromosome[int16]

// Int is a chromosome of int32 genes bounded by [min,max].
type Int = integerChromosome[int32]

// NewShort allocates a Short chromosome. Returns ErrInvalidBounds if min >= max.
func NewShort(length int, min, max int16, source *rng.Source) (*Short, error) {
	return newIntegerChromosome(length, min, max, source)
}

// NewInt allocates an Int chromosome. Returns ErrInvalidBounds if min >= max.
func NewInt(length int, min, max int32, source *rng.Source) (*Int, error) {
	return newIntegerChromosome(length, min, max, source)
}
