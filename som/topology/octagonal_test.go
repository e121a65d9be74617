package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctagonalCellSuffixParity(t *testing.T) {
	o := NewOctagonal(WithDimensions2D(4, 4))
	require.Equal(t, "0,0:O", o.LocationFromCoord(0, 0))
	require.Equal(t, "1,0:R", o.LocationFromCoord(1, 0))
	require.Equal(t, "1,1:O", o.LocationFromCoord(1, 1))
}

func TestOctagonalNeighborCounts(t *testing.T) {
	o := NewOctagonal(WithDimensions2D(4, 4))
	locs := NewLocationMap(o)

	loc, err := locs.Resolve("1,1:O")
	require.NoError(t, err)
	require.Len(t, loc.Neighbors, 8)

	loc, err = locs.Resolve("1,0:R")
	require.NoError(t, err)
	require.Len(t, loc.Neighbors, 4)
}

func TestOctagonalToroidalRequiresEvenAxes(t *testing.T) {
	require.Panics(t, func() {
		NewOctagonal(WithDimensions2D(3, 4), WithToroidal(true))
	})
	require.NotPanics(t, func() {
		NewOctagonal(WithDimensions2D(4, 4), WithToroidal(true))
	})
}
