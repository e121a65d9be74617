package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCubeNeighborOrderInterior(t *testing.T) {
	c := NewCube(WithDimensions3D(3, 3, 3))
	locs := NewLocationMap(c)

	loc, err := locs.Resolve("1,1,1")
	require.NoError(t, err)
	require.Equal(t, []string{"1,0,1", "1,2,1", "0,1,1", "2,1,1", "1,1,2", "1,1,0"}, loc.Neighbors)
}

func TestCubeTotalNodesAndIndexRoundTrip(t *testing.T) {
	c := NewCube(WithDimensions3D(2, 3, 4))
	require.Equal(t, 24, c.TotalNodes())
	require.Equal(t, "1,2,3", c.LocationFromIndex(c.TotalNodes()-1))
}
