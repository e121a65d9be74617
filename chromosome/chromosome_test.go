package chromosome

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/rng"
)

// S1 from spec.md §8: IntChromosome(length=1, min=-1, max=1), gene=1.
// mutateDrift(0, Up) -> gene=-1. From gene=-1, mutateDrift(0, Down) -> gene=1.
func TestIntDriftWrapping_S1(t *testing.T) {
	c, err := NewInt(1, -1, 1, rng.NewSeeded(1))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 1))

	require.NoError(t, c.MutateDrift(0, Up))
	v, err := c.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, -1, v)

	require.NoError(t, c.MutateDrift(0, Down))
	v, err = c.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)
}

func TestNumericBoundsInvariant(t *testing.T) {
	source := rng.NewSeeded(99)
	c, err := NewInt(20, -5, 5, source)
	require.NoError(t, err)
	require.NoError(t, c.Seed(0))
	for i := 0; i < 1000; i++ {
		idx := i % 20
		require.NoError(t, c.MutateDrift(idx, Direction(i%2)))
		require.NoError(t, c.MutateRandom(idx))
		require.NoError(t, c.Set(idx, int32(i*7-50)))
	}
	for i := 0; i < 20; i++ {
		v, err := c.Get(i)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, c.Min())
		require.LessOrEqual(t, v, c.Max())
	}
}

func TestDoubleDriftClamps(t *testing.T) {
	c, err := NewDouble(1, 0, 1, 0.3, rng.NewSeeded(1))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0.9))
	require.NoError(t, c.MutateDrift(0, Up))
	v, err := c.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestCharWrapping(t *testing.T) {
	c := NewChar(1, rng.NewSeeded(1))
	require.NoError(t, c.Set(0, '~'))
	require.NoError(t, c.MutateDrift(0, Up))
	v, err := c.Get(0)
	require.NoError(t, err)
	require.Equal(t, ' ', v)

	require.NoError(t, c.Set(0, ' '))
	require.NoError(t, c.MutateDrift(0, Down))
	v, err = c.Get(0)
	require.NoError(t, err)
	require.Equal(t, '~', v)
}

func TestBoolSeedDeterministicAtExtremes(t *testing.T) {
	c := NewBool(50, rng.NewSeeded(1))
	require.NoError(t, c.Seed(0))
	for i := 0; i < 50; i++ {
		v, err := c.Get(i)
		require.NoError(t, err)
		require.False(t, v)
	}
	require.NoError(t, c.Seed(1))
	for i := 0; i < 50; i++ {
		v, err := c.Get(i)
		require.NoError(t, err)
		require.True(t, v)
	}
}

// TestLockingInvariance covers spec.md §8 property 3.
func TestLockingInvariance(t *testing.T) {
	inner, err := NewInt(5, 0, 100, rng.NewSeeded(1))
	require.NoError(t, err)
	require.NoError(t, inner.Seed(0))
	locked := NewLocking(inner)
	require.NoError(t, locked.Lock(2))

	before, err := locked.GetValue(2)
	require.NoError(t, err)

	require.NoError(t, locked.SetValue(2, int32(77)))
	require.NoError(t, locked.MutateDrift(2, Up))
	require.NoError(t, locked.MutateRandom(2))

	after, err := locked.GetValue(2)
	require.NoError(t, err)
	require.Equal(t, before, after)

	// Unlocked indices still mutate freely.
	require.NoError(t, locked.SetValue(0, int32(42)))
	v, err := locked.GetValue(0)
	require.NoError(t, err)
	require.EqualValues(t, 42, v)
}

func TestLockingCloneIndependence(t *testing.T) {
	inner, err := NewInt(3, 0, 10, rng.NewSeeded(1))
	require.NoError(t, err)
	locked := NewLocking(inner)
	require.NoError(t, locked.Lock(0))

	clone := locked.Clone().(*Locking)
	require.NoError(t, clone.Unlock(0))

	lv, _ := locked.IsLocked(0)
	cv, _ := clone.IsLocked(0)
	require.True(t, lv)
	require.False(t, cv)
}

func TestResizeCopiesMinLength(t *testing.T) {
	c, err := NewInt(3, 0, 10, rng.NewSeeded(1))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 1))
	require.NoError(t, c.Set(1, 2))
	require.NoError(t, c.Set(2, 3))

	c.Resize(2)
	require.Equal(t, 2, c.Len())
	v0, _ := c.Get(0)
	v1, _ := c.Get(1)
	require.EqualValues(t, 1, v0)
	require.EqualValues(t, 2, v1)

	c.Resize(4)
	require.Equal(t, 4, c.Len())
	v3, _ := c.Get(3)
	require.EqualValues(t, 0, v3)
}

func TestInvalidBounds(t *testing.T) {
	_, err := NewInt(1, 5, 5, rng.NewSeeded(1))
	require.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewDouble(1, 5, 1, 0.1, rng.NewSeeded(1))
	require.ErrorIs(t, err, ErrInvalidBounds)
}

func TestIndexOutOfRange(t *testing.T) {
	c, err := NewInt(2, 0, 10, rng.NewSeeded(1))
	require.NoError(t, err)
	require.ErrorIs(t, c.MutateDrift(5, Up), ErrIndexOutOfRange)
	require.ErrorIs(t, c.MutateRandom(-1), ErrIndexOutOfRange)
	_, err = c.Get(9)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
