package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/chromosome"
	"github.com/katalvlaran/evocore/dna"
	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// newDoubleDNA builds a single-chromosome DNA of length genes, every value
// set to v.
func newDoubleDNA(t *testing.T, source *rng.Source, genes int, v float64) *dna.DNA {
	t.Helper()
	c, err := chromosome.NewDouble(genes, 0, 100, 1, source)
	require.NoError(t, err)
	for i := 0; i < genes; i++ {
		require.NoError(t, c.Set(i, v))
	}
	d := dna.New()
	require.NoError(t, d.Add("genes", c))
	return d
}

// newTestEntity builds a Ready entity whose DNA is newDoubleDNA(...) and
// whose fitness hook simply sums its genes.
func newTestEntity(t *testing.T, source *rng.Source, genes int, v float64) *entity.Entity {
	t.Helper()
	hooks := entity.Hooks{
		CreateDNA: func() (*dna.DNA, error) { return newDoubleDNA(t, source, genes, v), nil },
		LoadFromDNA: func(d *dna.DNA) (any, error) {
			return d, nil
		},
		EvaluateFitness: func(p any) (float64, error) {
			d := p.(*dna.DNA)
			c, err := d.Get("genes")
			if err != nil {
				return 0, err
			}
			var sum float64
			for i := 0; i < c.Len(); i++ {
				val, err := c.GetValue(i)
				if err != nil {
					return 0, err
				}
				sum += val.(float64)
			}
			return sum, nil
		},
	}
	e, err := entity.New(hooks)
	require.NoError(t, err)
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.LoadEntity())
	_, err = e.EnsureFitness()
	require.NoError(t, err)
	return e
}

func geneValue(t *testing.T, e *entity.Entity, index int) float64 {
	t.Helper()
	c, err := e.DNA().Get("genes")
	require.NoError(t, err)
	v, err := c.GetValue(index)
	require.NoError(t, err)
	return v.(float64)
}
