package dna

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/chromosome"
	"github.com/katalvlaran/evocore/rng"
)

func newIntChrom(t *testing.T) chromosome.Chromosome {
	t.Helper()
	c, err := chromosome.NewInt(3, 0, 10, rng.NewSeeded(1))
	require.NoError(t, err)
	return c
}

func TestAddDuplicateName(t *testing.T) {
	d := New()
	require.NoError(t, d.Add("Speed", newIntChrom(t)))
	err := d.Add("speed", newIntChrom(t))
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestInsertionOrderPreserved(t *testing.T) {
	d := New()
	require.NoError(t, d.Add("Zeta", newIntChrom(t)))
	require.NoError(t, d.Add("Alpha", newIntChrom(t)))
	require.NoError(t, d.Add("Mid", newIntChrom(t)))
	require.Equal(t, []string{"Zeta", "Alpha", "Mid"}, d.Names())
}

func TestCaseInsensitiveLookup(t *testing.T) {
	d := New()
	c := newIntChrom(t)
	require.NoError(t, d.Add("Strength", c))
	got, err := d.Get("STRENGTH")
	require.NoError(t, err)
	require.Same(t, c, got)
}

func TestGetNotFound(t *testing.T) {
	d := New()
	_, err := d.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCloneIsDeep(t *testing.T) {
	d := New()
	c := newIntChrom(t)
	require.NoError(t, c.SetValue(0, int32(5)))
	require.NoError(t, d.Add("x", c))

	clone := d.Clone()
	cc, err := clone.Get("x")
	require.NoError(t, err)
	require.NoError(t, cc.SetValue(0, int32(9)))

	orig, err := d.Get("x")
	require.NoError(t, err)
	v, err := orig.GetValue(0)
	require.NoError(t, err)
	require.EqualValues(t, 5, v)
}

func TestDisposeClears(t *testing.T) {
	d := New()
	require.NoError(t, d.Add("x", newIntChrom(t)))
	d.Dispose()
	require.Equal(t, 0, d.Len())
	_, err := d.Get("x")
	require.ErrorIs(t, err, ErrNotFound)
}
