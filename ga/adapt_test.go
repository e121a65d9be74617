package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocore/rng"
)

func initialFitness(t *testing.T, genes int, v float64) float64 {
	t.Helper()
	return float64(genes) * v
}

// TestHillClimbNeverRegresses covers spec.md §8's monotone-improvement
// property for Lamarckian local search: random-ascent HillClimb's returned
// fitness is never worse than the entity's starting fitness.
func TestHillClimbNeverRegresses(t *testing.T) {
	source := rng.NewSeeded(20)
	target := newTestEntity(t, source, 5, 10)
	start := initialFitness(t, 5, 10)

	op := NewHillClimb(source)
	_, bestFitness, err := op.Optimize(target, 30)
	require.NoError(t, err)
	require.GreaterOrEqual(t, bestFitness, start)
}

// TestNextAscentHillClimbNeverRegresses covers spec.md §4.7's lockstep
// variant: the returned fitness never drops below the starting fitness. The
// cursor's visiting order itself is checked by
// TestLockstepCursorWrapsGeneThenChromosome.
func TestNextAscentHillClimbNeverRegresses(t *testing.T) {
	source := rng.NewSeeded(23)
	target := newTestEntity(t, source, 3, 10)
	start := initialFitness(t, 3, 10)

	op := NewNextAscentHillClimb(source)
	_, bestFitness, err := op.Optimize(target, 12) // 4 full lockstep cycles over 3 genes
	require.NoError(t, err)
	require.GreaterOrEqual(t, bestFitness, start)
}

func TestLockstepCursorWrapsGeneThenChromosome(t *testing.T) {
	names := []string{"a", "b"}
	lengths := []int{2, 1}

	c := lockstepCursor{chromIdx: 0, geneIdx: 0}
	c = c.advance(names, lengths)
	require.Equal(t, lockstepCursor{chromIdx: 0, geneIdx: 1}, c)

	c = c.advance(names, lengths) // gene overflows chromosome "a" (len 2)
	require.Equal(t, lockstepCursor{chromIdx: 1, geneIdx: 0}, c)

	c = c.advance(names, lengths) // chromosome "b" (len 1) overflows too
	require.Equal(t, lockstepCursor{chromIdx: 0, geneIdx: 0}, c)
}

// TestSteepestAscentNeverRegresses covers spec.md §4.7's adaptive-step
// gradient search: the working genotype is only ever replaced by a strictly
// better one, so the returned fitness never drops below the start.
func TestSteepestAscentNeverRegresses(t *testing.T) {
	source := rng.NewSeeded(21)
	target := newTestEntity(t, source, 3, 10)
	start := initialFitness(t, 3, 10)

	op := NewSteepestAscent(source, 4, 2)
	_, bestFitness, err := op.Optimize(target, 40)
	require.NoError(t, err)
	require.GreaterOrEqual(t, bestFitness, start)
}

func TestSteepestAscentPanicsOnInvalidParameters(t *testing.T) {
	source := rng.NewSeeded(24)
	require.Panics(t, func() { NewSteepestAscent(source, 0, 2) })
	require.Panics(t, func() { NewSteepestAscent(source, 1, 1) })
}

func TestGradientNormExcludesRetiredComponents(t *testing.T) {
	components := []*gradientComponent{
		{name: "genes", idx: 0, dir: 1},
		{name: "genes", idx: 1, dir: 1, retired: true},
	}
	require.Equal(t, 2, gradientNorm(components))
	retireOne(components)
	require.Equal(t, 1, gradientNorm(components))
}

func TestSimulatedAnnealingLinearScheduleInterpolates(t *testing.T) {
	schedule := NewLinearSchedule(10, 0)
	require.Equal(t, 10.0, schedule.Temperature(0, 10))
	require.Equal(t, 5.0, schedule.Temperature(5, 10))
	require.Equal(t, 0.0, schedule.Temperature(10, 10))
}

func TestSimulatedAnnealingStepScheduleDropsPeriodically(t *testing.T) {
	schedule := NewStepSchedule(10, 2, 0, 3)
	require.Equal(t, 10.0, schedule.Temperature(0, 0))
	require.Equal(t, 10.0, schedule.Temperature(2, 0))
	require.Equal(t, 8.0, schedule.Temperature(3, 0))
	require.Equal(t, 6.0, schedule.Temperature(6, 0))
	require.Equal(t, 0.0, schedule.Temperature(100, 0)) // clamped at Tfinal
}

func TestSimulatedAnnealingStepSchedulePanicsOnZeroFrequency(t *testing.T) {
	require.Panics(t, func() { NewStepSchedule(10, 2, 0, 0) })
}

func TestLinearAcceptanceIsDeterministic(t *testing.T) {
	// bestFitness < putativeFitness+temperature: 5 < 9+0.5 -> accept.
	accept, err := LinearAcceptance{}.Accept(nil, 5, 9, 0.5)
	require.NoError(t, err)
	require.True(t, accept)

	// 10 < 9+0.5 is false -> reject.
	accept, err = LinearAcceptance{}.Accept(nil, 10, 9, 0.5)
	require.NoError(t, err)
	require.False(t, accept)
}

func TestBoltzmannAcceptanceUsesPhysicalConstant(t *testing.T) {
	source := rng.NewSeeded(25)
	// putative strictly better than best: probability clamps to 1 regardless
	// of the tiny k, so acceptance is unconditional.
	accept, err := BoltzmannAcceptance{}.Accept(source, 10, 20, 1000)
	require.NoError(t, err)
	require.True(t, accept)

	// putative worse than best: k's astronomically small magnitude collapses
	// the acceptance probability to (numerically) zero at any ordinary
	// temperature, unlike a formula that omits k.
	accept, err = BoltzmannAcceptance{}.Accept(source, 10, 9, 1000)
	require.NoError(t, err)
	require.False(t, accept)
}

func TestSimulatedAnnealingNeverWorseThanStart(t *testing.T) {
	source := rng.NewSeeded(22)
	target := newTestEntity(t, source, 5, 10)
	start := initialFitness(t, 5, 10)

	op := NewSimulatedAnnealing(source, NewLinearSchedule(5, 0), LinearAcceptance{})
	_, bestFitness, err := op.Optimize(target, 40)
	require.NoError(t, err)
	require.GreaterOrEqual(t, bestFitness, start) // best is tracked independently of the accepted walk
}

func TestSimulatedAnnealingBoltzmannNeverWorseThanStart(t *testing.T) {
	source := rng.NewSeeded(26)
	target := newTestEntity(t, source, 5, 10)
	start := initialFitness(t, 5, 10)

	op := NewSimulatedAnnealing(source, NewStepSchedule(5, 1, 0, 4), BoltzmannAcceptance{})
	_, bestFitness, err := op.Optimize(target, 40)
	require.NoError(t, err)
	require.GreaterOrEqual(t, bestFitness, start)
}

func TestSimulatedAnnealingPanicsOnNilAxis(t *testing.T) {
	source := rng.NewSeeded(27)
	require.Panics(t, func() { NewSimulatedAnnealing(source, nil, LinearAcceptance{}) })
	require.Panics(t, func() { NewSimulatedAnnealing(source, NewLinearSchedule(1, 0), nil) })
}
