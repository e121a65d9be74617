package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/dna"
)

func countingHooks(t *testing.T) (Hooks, *int) {
	t.Helper()
	evalCalls := 0
	hooks := Hooks{
		CreateDNA: func() (*dna.DNA, error) { return dna.New(), nil },
		LoadFromDNA: func(d *dna.DNA) (any, error) {
			return "phenotype", nil
		},
		EvaluateFitness: func(p any) (float64, error) {
			evalCalls++
			return 42.0, nil
		},
	}
	return hooks, &evalCalls
}

// TestStateMonotonicity covers spec.md §8 property 5.
func TestStateMonotonicity(t *testing.T) {
	hooks, evalCalls := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	require.Equal(t, Created, e.State())

	require.NoError(t, e.InitEntity())
	require.Equal(t, Initialised, e.State())

	require.NoError(t, e.LoadEntity())
	require.Equal(t, Loaded, e.State())

	score, err := e.EnsureFitness()
	require.NoError(t, err)
	require.Equal(t, 42.0, score)
	require.Equal(t, Ready, e.State())
	require.Equal(t, 1, *evalCalls)

	// Idempotent: calling again does not re-run EvaluateFitness.
	score2, err := e.EnsureFitness()
	require.NoError(t, err)
	require.Equal(t, score, score2)
	require.Equal(t, 1, *evalCalls)
}

func TestEnsureFitnessBeforeLoad(t *testing.T) {
	hooks, _ := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	require.NoError(t, e.InitEntity())
	_, err = e.EnsureFitness()
	require.True(t, errors.Is(err, ErrNotLoaded))
}

func TestSetFitnessForcesReady(t *testing.T) {
	hooks, _ := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	e.SetFitness(7)
	require.Equal(t, Ready, e.State())
	score, ok := e.Fitness()
	require.True(t, ok)
	require.Equal(t, 7.0, score)

	// Idempotent.
	e.SetFitness(7)
	require.Equal(t, Ready, e.State())
}

func TestMarkAsFreeThenCreated(t *testing.T) {
	hooks, _ := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.LoadEntity())
	_, err = e.EnsureFitness()
	require.NoError(t, err)

	oldID := e.ID()
	e.MarkAsFree()
	require.Equal(t, Free, e.State())
	require.Nil(t, e.DNA())
	require.Nil(t, e.Phenotype())
	_, ok := e.Fitness()
	require.False(t, ok)

	e.MarkAsCreated()
	require.Equal(t, Created, e.State())
	require.NotEqual(t, oldID, e.ID())
}

func TestCopyFromDeepCopiesDNA(t *testing.T) {
	hooks, _ := countingHooks(t)
	src, err := New(hooks)
	require.NoError(t, err)
	require.NoError(t, src.InitEntity())

	dst, err := New(hooks)
	require.NoError(t, err)
	dst.CopyFrom(src)

	require.NotSame(t, src.DNA(), dst.DNA())
	require.Equal(t, src.State(), dst.State())
}

func TestCloneAssignsFreshID(t *testing.T) {
	hooks, _ := countingHooks(t)
	src, err := New(hooks)
	require.NoError(t, err)
	require.NoError(t, src.InitEntity())

	clone := src.Clone()
	require.NotEqual(t, src.ID(), clone.ID())
	require.Equal(t, src.State(), clone.State())
}

func TestMarkAsInitialisedResetsDownstreamState(t *testing.T) {
	hooks, _ := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.LoadEntity())
	_, err = e.EnsureFitness()
	require.NoError(t, err)
	require.Equal(t, Ready, e.State())

	newDNA := dna.New()
	e.MarkAsInitialised(newDNA)
	require.Equal(t, Initialised, e.State())
	require.Same(t, newDNA, e.DNA())
	require.Nil(t, e.Phenotype())
	_, ok := e.Fitness()
	require.False(t, ok)
}

func TestNewNilHooks(t *testing.T) {
	_, err := New(Hooks{})
	require.ErrorIs(t, err, ErrNilHooks)
}

func TestInitLoadEventsFireOnce(t *testing.T) {
	hooks, _ := countingHooks(t)
	e, err := New(hooks)
	require.NoError(t, err)
	initCount, loadCount := 0, 0
	e.OnInit = func(*Entity) { initCount++ }
	e.OnLoad = func(*Entity) { loadCount++ }

	require.NoError(t, e.InitEntity())
	require.NoError(t, e.InitEntity())
	require.NoError(t, e.LoadEntity())
	require.NoError(t, e.LoadEntity())

	require.Equal(t, 1, initCount)
	require.Equal(t, 1, loadCount)
}
