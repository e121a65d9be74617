package chromosome

import "github.com/katalvlaran/evocore/rng"

// charMin and charMax bound the printable-ASCII gene universe (spec.md §4.2).
const (
	charMin rune = ' '
	charMax rune = '~'
)

// Char is a fixed-length sequence of printable-ASCII genes, universe
// [' ', '~'].
type Char struct {
	genes []rune
	rng   *rng.Source
}

// NewChar allocates a Char chromosome of the given length, all genes ' '.
func NewChar(length int, source *rng.Source) *Char {
	genes := make([]rune, length)
	for i := range genes {
		genes[i] = charMin
	}
	return &Char{genes: genes, rng: source}
}

// Len implements Chromosome.
func (c *Char) Len() int { return len(c.genes) }

// Clone implements Chromosome.
func (c *Char) Clone() Chromosome {
	out := &Char{genes: make([]rune, len(c.genes)), rng: c.rng}
	copy(out.genes, c.genes)
	return out
}

// Equals implements Chromosome.
func (c *Char) Equals(other Chromosome) bool {
	o, ok := other.(*Char)
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

// Seed draws every gene uniformly from [' ', '~'].
func (c *Char) Seed(_ float64) error {
	for i := range c.genes {
		v, err := c.rng.NextRange(int(charMin), int(charMax)+1)
		if err != nil {
			return err
		}
		c.genes[i] = rune(v)
	}
	return nil
}

// MutateDrift steps the gene at index by ±1, wrapping at the universe's edges.
func (c *Char) MutateDrift(index int, dir Direction) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = driftRune(c.genes[index], dir)
	return nil
}

func driftRune(g rune, dir Direction) rune {
	if dir == Up {
		if g == charMax {
			return charMin
		}
		return g + 1
	}
	if g == charMin {
		return charMax
	}
	return g - 1
}

// MutateRandom replaces the gene at index with a fresh uniform draw.
func (c *Char) MutateRandom(index int) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	v, err := c.rng.NextRange(int(charMin), int(charMax)+1)
	if err != nil {
		return err
	}
	c.genes[index] = rune(v)
	return nil
}

// Get returns the rune gene at index.
func (c *Char) Get(index int) (rune, error) {
	if index < 0 || index >= len(c.genes) {
		return 0, ErrIndexOutOfRange
	}
	return c.genes[index], nil
}

// Set assigns the rune gene at index, clamping into the universe.
func (c *Char) Set(index int, value rune) error {
	if index < 0 || index >= len(c.genes) {
		return ErrIndexOutOfRange
	}
	c.genes[index] = boundRune(value)
	return nil
}

func boundRune(v rune) rune {
	if v < charMin {
		return charMin
	}
	if v > charMax {
		return charMax
	}
	return v
}

// GetValue implements Chromosome.
func (c *Char) GetValue(index int) (any, error) { return c.Get(index) }

// SetValue implements Chromosome.
func (c *Char) SetValue(index int, value any) error {
	r, ok := value.(rune)
	if !ok {
		return ErrTypeMismatch
	}
	return c.Set(index, r)
}

// Resize implements Chromosome.
func (c *Char) Resize(newLength int) {
	out := make([]rune, newLength)
	for i := range out {
		out[i] = charMin
	}
	copy(out, c.genes)
	c.genes = out
}
