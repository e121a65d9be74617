package learn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/som/network"
	"github.com/katalvlaran/evocore/som/topology"
	"github.com/katalvlaran/evocore/vector"
)

func newRectNetwork(t *testing.T, width, height int) *network.Network {
	t.Helper()
	r := topology.NewRectangular(
		topology.WithDimensions2D(width, height),
		topology.WithInputVectorSize(1),
		topology.WithWeightRange(0, 1),
	)
	net, err := network.New(r)
	require.NoError(t, err)
	return net
}

// TestRadiusZeroUpdatesWinnerOnly covers spec.md §4.11 step 2.
func TestRadiusZeroUpdatesWinnerOnly(t *testing.T) {
	net := newRectNetwork(t, 3, 1)
	l := New(net, WithLearningRate(0.5), WithLearningRadius(0))

	before := make([]float64, net.Layer().Len())
	for i := range before {
		before[i] = net.Layer().NeuronAt(i).Weights()[0]
	}

	winner, _, err := net.Layer().Winner(vector.Vector[float64]{1})
	require.NoError(t, err)

	_, err = l.Run(vector.Vector[float64]{1})
	require.NoError(t, err)

	for i, w := range before {
		got := net.Layer().NeuronAt(i).Weights()[0]
		if i == winner {
			require.NotEqual(t, w, got)
		} else {
			require.Equal(t, w, got)
		}
	}
}

// TestNeighborhoodFalloffExact covers spec.md §8 property 11: the update at
// ring k is scaled by exactly exp(-k²/(2·r²)) relative to the winner's own
// (ring-0) update.
func TestNeighborhoodFalloffExact(t *testing.T) {
	const width = 5
	net := newRectNetwork(t, width, 1)
	radius := 2.0
	l := New(net, WithLearningRate(0.5), WithLearningRadius(radius))

	before := make([]float64, net.Layer().Len())
	for i := range before {
		before[i] = net.Layer().NeuronAt(i).Weights()[0]
	}

	input := vector.Vector[float64]{before[2]} // neuron 2 is the exact match, hence the winner
	winner, _, err := net.Layer().Winner(input)
	require.NoError(t, err)
	require.Equal(t, 2, winner)

	errSum, err := l.Run(input)
	require.NoError(t, err)
	require.Greater(t, errSum, 0.0)

	squaredRadius2 := 2 * radius * radius
	for j := 0; j < width; j++ {
		k := j - winner
		if k < 0 {
			k = -k
		}
		expectedFactor := math.Exp(-float64(k*k) / squaredRadius2)
		expected := before[j] + 0.5*expectedFactor*(input[0]-before[j])
		got := net.Layer().NeuronAt(j).Weights()[0]
		require.InDelta(t, expected, got, 1e-9)
	}
}

func TestRunEpochSumsErrors(t *testing.T) {
	net := newRectNetwork(t, 3, 1)
	l := New(net, WithLearningRadius(0))

	e1, err := l.Run(vector.Vector[float64]{0.5})
	require.NoError(t, err)
	e2, err := l.Run(vector.Vector[float64]{0.5})
	require.NoError(t, err)

	net2 := newRectNetwork(t, 3, 1)
	l2 := New(net2, WithLearningRadius(0))
	epochSum, err := l2.RunEpoch([]vector.Vector[float64]{{0.5}, {0.5}})
	require.NoError(t, err)
	require.InDelta(t, e1+e2, epochSum, 1e-9)
}
