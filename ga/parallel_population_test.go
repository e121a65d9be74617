package ga

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/rng"
)

func parallelSettings(source *rng.Source) *ParallelSettings {
	return NewParallel(
		WithStableSize(6),
		WithMaxGenerations(2),
		WithSelectOne(NewEveryOne()),
		WithSelectTwo(NewEveryTwo()),
		WithCrossover(NewSinglePoint(source)),
		WithMutation(NewSingleDrift(source)),
		WithCrossoverRatio(1),
		WithMutationRatio(1),
		WithMigrationRatio(0),
		WithEntityFactory(testFactory(source, 4)),
	).WithThreadCount(3)
}

func TestParallelPopulationEvolveMatchesStableSize(t *testing.T) {
	source := rng.NewSeeded(300)
	pp, err := NewParallelPopulation(parallelSettings(source), source)
	require.NoError(t, err)

	require.NoError(t, pp.Evolve(context.Background(), nil))
	require.Equal(t, 2, pp.Generation())
	require.Equal(t, 6, pp.Len())
}

func TestParallelPopulationFallsBackToDefaultThreadCount(t *testing.T) {
	source := rng.NewSeeded(301)
	settings := parallelSettings(source)
	settings.ThreadCount = 0
	pp, err := NewParallelPopulation(settings, source)
	require.NoError(t, err)
	require.Equal(t, DefaultThreadCount, pp.threadCount)
}

func TestRunPoolPropagatesFirstError(t *testing.T) {
	sentinel := ErrCancelled
	err := runPool(4, 10, func(i int) error {
		if i == 5 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}
