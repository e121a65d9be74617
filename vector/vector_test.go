package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubLengthMismatch(t *testing.T) {
	a := Vector[float64]{1, 2, 3}
	b := Vector[float64]{1, 2}
	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Dot(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestArithmetic(t *testing.T) {
	a := Vector[float64]{1, -2, 3}
	b := Vector[float64]{4, 5, -6}

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, Vector[float64]{5, 3, -3}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, Vector[float64]{-3, -7, 9}, diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, Vector[float64]{4, -10, -18}, prod)

	require.Equal(t, Vector[float64]{1, 2, 3}, a.Abs())

	dot, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, float64(4-10-18), dot)

	require.Equal(t, float64(2), a.Sum())
	require.Equal(t, Vector[float64]{2, -4, 6}, a.Scale(2))
}

func TestUpdate(t *testing.T) {
	v := Vector[float64]{1, 2, 3}
	v.Update(func(i int, x float64) float64 { return x + float64(i) })
	require.Equal(t, Vector[float64]{1, 3, 5}, v)
}

func TestEuclideanDistance(t *testing.T) {
	a := Vector[float64]{0, 0}
	b := Vector[float64]{3, 4}
	d, err := EuclideanDistance(a, b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-12)
}

func TestEuclideanNormZero(t *testing.T) {
	require.True(t, math.Abs(EuclideanNorm(Vector[float64]{})) < 1e-12)
}
