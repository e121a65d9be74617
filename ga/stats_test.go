package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/rng"
)

func TestStatsComputesDistribution(t *testing.T) {
	source := rng.NewSeeded(60)
	pop := newPopulationWithFitness(t, source, 10, 20, 30)
	pop.generation = 2

	stats := pop.Stats()
	require.Equal(t, 2, stats.Generation)
	require.Equal(t, 3, stats.PopulationSize)
	require.Equal(t, 30.0, stats.BestFitness)
	require.Equal(t, 20.0, stats.AverageFitness)
	require.InDelta(t, 8.16496, stats.StdDevFitness, 1e-4)
}

func TestStatsOnEmptyPopulation(t *testing.T) {
	source := rng.NewSeeded(61)
	pop := newPopulationWithFitness(t, source)

	stats := pop.Stats()
	require.Equal(t, 0, stats.PopulationSize)
	require.Zero(t, stats.BestFitness)
}

func TestSnapshotClonesEntitiesIndependently(t *testing.T) {
	source := rng.NewSeeded(62)
	pop := newPopulationWithFitness(t, source, 1, 2, 3)

	snap := pop.Snapshot()
	require.Len(t, snap.Entities, 3)
	for i, e := range snap.Entities {
		require.NotSame(t, pop.EntityAt(i), e)
		f, ok := e.Fitness()
		require.True(t, ok)
		want, _ := pop.EntityAt(i).Fitness()
		require.Equal(t, want, f)
	}

	// mutating the snapshot's genotype must not affect the live population.
	require.NoError(t, snap.Entities[0].DNA().Seed(0))
	liveVal := geneValue(t, pop.EntityAt(0), 0)
	require.Equal(t, 1.0, liveVal)
}
