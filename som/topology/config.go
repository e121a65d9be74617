package topology

import "github.com/katalvlaran/evocore/rng"

// WeightMode selects how Builder.WeightsAtIndex initializes a neuron's
// weight vector (spec.md §4.10).
type WeightMode int

const (
	// Linear sets every element to min + i*(max-min)/totalNodes.
	Linear WeightMode = iota
	// Randomised samples every element uniformly in [min, max).
	Randomised
)

// Config holds the lattice parameters shared by every Builder
// (inputVectorSize, width, height, depth, toroidal — spec.md §4.10), plus
// the weight-initialization knobs.
type Config struct {
	InputVectorSize int
	Width           int
	Height          int
	Depth           int // 0 for 2D lattices
	Toroidal        bool
	WeightMode      WeightMode
	WeightMin       float64
	WeightMax       float64
	RNG             *rng.Source
}

// Option mutates a Config during construction, following the teacher's
// functional-options convention (builder/options.go): each constructor
// panics on a programmer error (non-positive dimension, nil RNG with
// Randomised mode), not a recoverable runtime error.
type Option func(*Config)

// defaultConfig returns a Config with spec.md's stated defaults:
// learningRate/learningRadius live in the learner, not here; weight range
// defaults to [0,1) per spec.md §4.12 "RandRange (default [0,1])".
func defaultConfig() Config {
	return Config{
		InputVectorSize: 1,
		Width:           1,
		Height:          1,
		WeightMode:      Linear,
		WeightMin:       0,
		WeightMax:       1,
	}
}

// WithInputVectorSize sets the per-neuron weight dimensionality. Panics if n <= 0.
func WithInputVectorSize(n int) Option {
	if n <= 0 {
		panic("topology: WithInputVectorSize(n<=0)")
	}
	return func(c *Config) { c.InputVectorSize = n }
}

// WithDimensions2D sets width and height for a 2D lattice. Panics if either is <= 0.
func WithDimensions2D(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("topology: WithDimensions2D(<=0)")
	}
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithDimensions3D sets width, height and depth for a 3D lattice. Panics if any is <= 0.
func WithDimensions3D(width, height, depth int) Option {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("topology: WithDimensions3D(<=0)")
	}
	return func(c *Config) { c.Width, c.Height, c.Depth = width, height, depth }
}

// WithToroidal enables edge-wrapping lookups.
func WithToroidal(b bool) Option {
	return func(c *Config) { c.Toroidal = b }
}

// WithWeightRange sets the [min,max) range weights are drawn from. Panics if min >= max.
func WithWeightRange(min, max float64) Option {
	if min >= max {
		panic("topology: WithWeightRange(min>=max)")
	}
	return func(c *Config) { c.WeightMin, c.WeightMax = min, max }
}

// WithRandomisedWeights selects Randomised weight init, drawing from source.
// Panics if source is nil.
func WithRandomisedWeights(source *rng.Source) Option {
	if source == nil {
		panic("topology: WithRandomisedWeights(nil)")
	}
	return func(c *Config) { c.WeightMode = Randomised; c.RNG = source }
}

func newConfig(opts ...Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// weightsAt builds the i'th neuron's initial weight vector per WeightMode
// (spec.md §4.10 "weightsAtIndex").
func (c Config) weightsAt(i, totalNodes int) []float64 {
	out := make([]float64, c.InputVectorSize)
	switch c.WeightMode {
	case Randomised:
		for k := range out {
			out[k] = c.WeightMin + c.RNG.NextFloat64()*(c.WeightMax-c.WeightMin)
		}
	default: // Linear
		step := (c.WeightMax - c.WeightMin) / float64(totalNodes)
		for k := range out {
			out[k] = c.WeightMin + float64(i)*step
		}
	}
	return out
}
