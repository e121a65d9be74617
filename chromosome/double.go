package chromosome

import "github.com/katalvlaran/evocore/rng"

// Double is a chromosome of float64 genes bounded by [min,max], with a
// per-chromosome drift step used by MutateDrift.
type Double struct {
	genes    []float64
	min, max float64
	drift    float64
	rng      *rng.Source
}

// NewDouble allocates a Double chromosome. drift is the fixed step size
// MutateDrift adds or subtracts. Returns ErrInvalidBounds if min >= max.
func NewDouble(length int, min, max, drift float64, source *rng.Source) (*Double, error) {
	if min >= max {
		return nil, ErrInvalidBounds
	}
	return &Double{genes: make([]float64, length), min: min, max: max, drift: drift, rng: source}, nil
}

// Len implements Chromosome.
func (c *Double) Len() int { return len(c.genes) }

// Clone implements Chromosome.
func (c *Double) Clone() Chromosome {
	out := &Double{genes: make([]float64, len(c.genes)), min: c.min, max: c.max, drift: c.drift, rng: c.rng}
	copy(out.genes, c.genes)
	return out
}

// Equals implements Chromosome.
func (c *Double) Equals(other Chromosome) bool {
	o, ok := other.(*Double)
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
func (c *Double) Seed(_ float64) error {
	for i := range c.genes {
		c.genes[i] = c.min + c.rng.NextFloat64()*(c.max-c.min)
	}
	return nil
}

// MutateDrift adds (Up) or subtracts (Down) the drift step, then clamps.
func (c *Double) MutateDrift(index int, dir Direction) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	if dir == Up {
		c.genes[index] = c.bound(c.genes[index] + c.drift)
	} else {
		c.genes[index] = c.bound(c.genes[index] - c.drift)
	}
	return nil
}

// MutateRandom replaces the gene at index with a fresh uniform draw.
func (c *Double) MutateRandom(index int) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = c.min + c.rng.NextFloat64()*(c.max-c.min)
	return nil
}

// Get returns the gene at index.
func (c *Double) Get(index int) (float64, error) {
	if index < 0 || index >= len(c.genes) {
		return 0, ErrIndexOutOfRange
	}
	return c.genes[index], nil
}

// Set assigns the gene at index, clamping into [min,max].
func (c *Double) Set(index int, value float64) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = c.bound(value)
	return nil
}

func (c *Double) bound(v float64) float64 {
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

// Min returns the chromosome's lower bound.
func (c *Double) Min() float64 { return c.min }

// Max returns the chromosome's upper bound.
func (c *Double) Max() float64 { return c.max }

// DriftStep returns the chromosome's drift step.
func (c *Double) DriftStep() float64 { return c.drift }

// GetValue implements Chromosome.
func (c *Double) GetValue(index int) (any, error) { return c.Get(index) }

// SetValue implements Chromosome.
func (c *Double) SetValue(index int, value any) error {
	v, ok := value.(float64)
	if !ok {
		return ErrTypeMismatch
	}
	return c.Set(index, v)
}

// Resize implements Chromosome.
func (c *Double) Resize(newLength int) {
	out := make([]float64, newLength)
	copy(out, c.genes)
	c.genes = out
}
