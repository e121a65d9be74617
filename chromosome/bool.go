package chromosome

import "github.com/katalvlaran/evocore/rng"

// Bool is a fixed-length sequence of boolean genes.
type Bool struct {
	genes []bool
	rng   *rng.Source
}

// NewBool allocates a Bool chromosome of the given length, all genes false.
func NewBool(length int, source *rng.Source) *Bool {
	return &Bool{genes: make([]bool, length), rng: source}
}

// Len implements Chromosome.
func (c *Bool) Len() int { return len(c.genes) }

// Clone implements Chromosome.
func (c *Bool) Clone() Chromosome {
	out := &Bool{genes: make([]bool, len(c.genes)), rng: c.rng}
	copy(out.genes, c.genes)
	return out
}

// Equals implements Chromosome.
func (c *Bool) Equals(other Chromosome) bool {
	o, ok := other.(*Bool)
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

// Seed sets every gene to true with probability p (spec.md §4.2 Bool variant).
func (c *Bool) Seed(p float64) error {
	if p < 0 || p > 1 {
		return ErrInvalidProbability
	}
	for i := range c.genes {
		ok, err := c.rng.RandomProb(p)
		if err != nil {
			return err
		}
		c.genes[i] = ok
	}
	return nil
}

// MutateDrift flips the gene at index (direction is irrelevant for a bit).
func (c *Bool) MutateDrift(index int, _ Direction) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = !c.genes[index]
	return nil
}

// MutateRandom sets the gene at index to a fresh coin flip.
func (c *Bool) MutateRandom(index int) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	ok, err := c.rng.RandomProb(0.5)
	if err != nil {
		return err
	}
	c.genes[index] = ok
	return nil
}

// Get returns the bool gene at index.
func (c *Bool) Get(index int) (bool, error) {
	if index < 0 || index >= len(c.genes) {
		return false, ErrIndexOutOfRange
	}
	return c.genes[index], nil
}

// Set assigns the bool gene at index.
func (c *Bool) Set(index int, value bool) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = value
	return nil
}

// GetValue implements Chromosome.
func (c *Bool) GetValue(index int) (any, error) { return c.Get(index) }

// SetValue implements Chromosome.
func (c *Bool) SetValue(index int, value any) error {
	b, ok := value.(bool)
	if !ok {
		return ErrTypeMismatch
	}
	return c.Set(index, b)
}

// Resize implements Chromosome.
func (c *Bool) Resize(newLength int) {
	out := make([]bool, newLength)
	copy(out, c.genes)
	c.genes = out
}
