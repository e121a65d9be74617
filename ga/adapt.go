package ga

import (
	"math"

	"github.com/katalvlaran/evocore/chromosome"
	"github.com/katalvlaran/evocore/dna"
	"github.com/katalvlaran/evocore/entity"
	"github.com/katalvlaran/evocore/rng"
)

// Optimizer performs local search over target's genotype, returning the best
// DNA bundle and fitness it found within iterations steps (spec.md §4.7). It
// never mutates target directly — Optimize works on an internal scratch
// clone so the caller decides whether to write back genotype (Lamarck),
// fitness only (Baldwin), or discard the result entirely.
type Optimizer interface {
	Optimize(target *entity.Entity, iterations int) (bestDNA *dna.DNA, bestFitness float64, err error)
}

// scoreCandidate loads and evaluates a candidate DNA against a scratch
// entity cloned from target, without disturbing target itself.
func scoreCandidate(scratch *entity.Entity, candidate *dna.DNA) (float64, error) {
	scratch.MarkAsInitialised(candidate)
	if err := scratch.LoadEntity(); err != nil {
		return 0, err
	}
	return scratch.EnsureFitness()
}

// randomNeighbor returns a clone of base with exactly one gene of one
// randomly chosen chromosome drifted by one step in a random direction
// (spec.md's random-ascent hill climbing: "pick chromosome and allele
// uniformly at random, mutate").
func randomNeighbor(source *rng.Source, base *dna.DNA) (*dna.DNA, error) {
	candidate := base.Clone()
	names := candidate.Names()
	if len(names) == 0 {
		return candidate, nil
	}
	name := names[source.NextIntn(len(names))]
	chrom, err := candidate.Get(name)
	if err != nil {
		return nil, err
	}
	if chrom.Len() == 0 {
		return candidate, nil
	}
	dir := chromosome.Down
	if source.NextIntn(2) == 1 {
		dir = chromosome.Up
	}
	if err := chrom.MutateDrift(source.NextIntn(chrom.Len()), dir); err != nil {
		return nil, err
	}
	return candidate, nil
}

// HillClimb is spec.md's random-ascent hill climbing: each step mutates a
// uniformly random (chromosome, allele) pair and the move is kept only if
// fitness improves.
type HillClimb struct{ rng *rng.Source }

// NewHillClimb constructs a random-ascent HillClimb optimizer.
func NewHillClimb(source *rng.Source) *HillClimb { return &HillClimb{rng: source} }

// Optimize implements Optimizer.
func (op *HillClimb) Optimize(target *entity.Entity, iterations int) (*dna.DNA, float64, error) {
	scratch := target.Clone()
	best := target.DNA().Clone()
	bestFitness, err := scoreCandidate(scratch, best.Clone())
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < iterations; i++ {
		candidate, err := randomNeighbor(op.rng, best)
		if err != nil {
			return nil, 0, err
		}
		score, err := scoreCandidate(scratch, candidate.Clone())
		if err != nil {
			return nil, 0, err
		}
		if score > bestFitness {
			best, bestFitness = candidate, score
		}
	}
	return best, bestFitness, nil
}

// lockstepCursor addresses a single allele in a flattened walk over every
// chromosome's every gene, in the order dna.DNA.Names() returns them.
type lockstepCursor struct{ chromIdx, geneIdx int }

// advance moves the cursor to the next allele, wrapping gene to 0 and the
// chromosome index forward on overflow, then wrapping the chromosome index
// back to 0 after the last chromosome (spec.md: "increment allele; on
// overflow wrap to 0 and advance chromosome; on overflow wrap chromosome to
// 0"). names/lengths describe the genotype shape being walked.
func (c lockstepCursor) advance(names []string, lengths []int) lockstepCursor {
	if len(names) == 0 {
		return c
	}
	chromIdx, geneIdx := c.chromIdx, c.geneIdx+1
	if geneIdx >= lengths[chromIdx] {
		geneIdx = 0
		chromIdx++
		if chromIdx >= len(names) {
			chromIdx = 0
		}
	}
	return lockstepCursor{chromIdx: chromIdx, geneIdx: geneIdx}
}

// NextAscentHillClimb is spec.md's next-ascent hill climbing: it walks
// chromosome/gene indices in deterministic lockstep rather than sampling
// them at random, mutating exactly one allele per step and advancing the
// cursor unconditionally afterward.
type NextAscentHillClimb struct{ rng *rng.Source }

// NewNextAscentHillClimb constructs a next-ascent HillClimb optimizer.
func NewNextAscentHillClimb(source *rng.Source) *NextAscentHillClimb {
	return &NextAscentHillClimb{rng: source}
}

func chromosomeLengths(base *dna.DNA, names []string) ([]int, error) {
	lengths := make([]int, len(names))
	for i, name := range names {
		chrom, err := base.Get(name)
		if err != nil {
			return nil, err
		}
		lengths[i] = chrom.Len()
	}
	return lengths, nil
}

// Optimize implements Optimizer.
func (op *NextAscentHillClimb) Optimize(target *entity.Entity, iterations int) (*dna.DNA, float64, error) {
	scratch := target.Clone()
	best := target.DNA().Clone()
	bestFitness, err := scoreCandidate(scratch, best.Clone())
	if err != nil {
		return nil, 0, err
	}
	names := best.Names()
	if len(names) == 0 {
		return best, bestFitness, nil
	}
	lengths, err := chromosomeLengths(best, names)
	if err != nil {
		return nil, 0, err
	}

	startChrom := -1
	for i, n := range lengths {
		if n > 0 {
			startChrom = i
			break
		}
	}
	if startChrom < 0 {
		return best, bestFitness, nil // every chromosome is empty
	}
	cursor := lockstepCursor{chromIdx: startChrom}

	for i := 0; i < iterations; i++ {
		candidate := best.Clone()
		chrom, err := candidate.Get(names[cursor.chromIdx])
		if err != nil {
			return nil, 0, err
		}
		dir := chromosome.Down
		if op.rng.NextIntn(2) == 1 {
			dir = chromosome.Up
		}
		if err := chrom.MutateDrift(cursor.geneIdx, dir); err != nil {
			return nil, 0, err
		}
		score, err := scoreCandidate(scratch, candidate.Clone())
		if err != nil {
			return nil, 0, err
		}
		if score > bestFitness {
			best, bestFitness = candidate, score
		}
		cursor = cursor.advance(names, lengths)
	}
	return best, bestFitness, nil
}

// boltzmannK is spec.md's Boltzmann acceptance constant.
const boltzmannK = 1.38066e-23

// Schedule computes the annealing temperature at a given iteration out of
// iterations total (spec.md §4.7's two independent temperature schedules).
type Schedule interface {
	Temperature(iteration, iterations int) float64
}

// LinearSchedule implements T = T0 + (i/N)*(T1-T0).
type LinearSchedule struct{ T0, T1 float64 }

// NewLinearSchedule constructs a LinearSchedule from T0 to T1.
func NewLinearSchedule(t0, t1 float64) LinearSchedule { return LinearSchedule{T0: t0, T1: t1} }

// Temperature implements Schedule.
func (s LinearSchedule) Temperature(iteration, iterations int) float64 {
	if iterations <= 0 {
		return s.T0
	}
	frac := float64(iteration) / float64(iterations)
	return s.T0 + frac*(s.T1-s.T0)
}

// StepSchedule implements "T -= step every frequency iterations while
// T > Tfinal".
type StepSchedule struct {
	T0, Step, Tfinal float64
	Frequency        int
}

// NewStepSchedule constructs a StepSchedule. Panics if frequency <= 0.
func NewStepSchedule(t0, step, tfinal float64, frequency int) StepSchedule {
	if frequency <= 0 {
		panic("ga: NewStepSchedule(frequency<=0)")
	}
	return StepSchedule{T0: t0, Step: step, Tfinal: tfinal, Frequency: frequency}
}

// Temperature implements Schedule.
func (s StepSchedule) Temperature(iteration, _ int) float64 {
	drops := float64(iteration / s.Frequency)
	t := s.T0 - drops*s.Step
	if t < s.Tfinal {
		t = s.Tfinal
	}
	return t
}

// Acceptance decides whether a putative move replaces the current best
// genotype, given the current best fitness, the putative's fitness and the
// schedule's temperature at this iteration (spec.md §4.7's two independent
// acceptance rules).
type Acceptance interface {
	Accept(source *rng.Source, bestFitness, putativeFitness, temperature float64) (bool, error)
}

// LinearAcceptance implements "best.f < putative.f + T".
type LinearAcceptance struct{}

// Accept implements Acceptance.
func (LinearAcceptance) Accept(_ *rng.Source, bestFitness, putativeFitness, temperature float64) (bool, error) {
	return bestFitness < putativeFitness+temperature, nil
}

// BoltzmannAcceptance implements "accept with probability
// exp((putative.f - best.f)/(k*T))", k = boltzmannK.
type BoltzmannAcceptance struct{}

// Accept implements Acceptance.
func (BoltzmannAcceptance) Accept(source *rng.Source, bestFitness, putativeFitness, temperature float64) (bool, error) {
	if temperature <= 0 {
		return putativeFitness > bestFitness, nil
	}
	p := math.Exp((putativeFitness - bestFitness) / (boltzmannK * temperature))
	if p >= 1 {
		return true, nil
	}
	return source.RandomProb(p)
}

// SimulatedAnnealing composes an independent temperature Schedule with an
// independent Acceptance rule (spec.md §4.7: the two axes vary
// independently, not as a single named pair).
type SimulatedAnnealing struct {
	rng        *rng.Source
	schedule   Schedule
	acceptance Acceptance
}

// NewSimulatedAnnealing constructs a SimulatedAnnealing optimizer from any
// Schedule/Acceptance combination.
func NewSimulatedAnnealing(source *rng.Source, schedule Schedule, acceptance Acceptance) *SimulatedAnnealing {
	if schedule == nil || acceptance == nil {
		panic("ga: NewSimulatedAnnealing(nil schedule or acceptance)")
	}
	return &SimulatedAnnealing{rng: source, schedule: schedule, acceptance: acceptance}
}

func (op *SimulatedAnnealing) temperature(iteration, iterations int) float64 {
	return op.schedule.Temperature(iteration, iterations)
}

// Optimize implements Optimizer. It walks a single working genotype
// (current), accepting or rejecting each putative neighbor per Acceptance,
// and separately remembers the best fitness seen along the way — the walk
// itself may wander to worse states (that is the entire point of allowing
// annealed acceptance), but the returned genotype is the best one observed.
func (op *SimulatedAnnealing) Optimize(target *entity.Entity, iterations int) (*dna.DNA, float64, error) {
	scratch := target.Clone()
	current := target.DNA().Clone()
	currentFitness, err := scoreCandidate(scratch, current.Clone())
	if err != nil {
		return nil, 0, err
	}
	best, bestFitness := current, currentFitness
	for i := 0; i < iterations; i++ {
		candidate, err := randomNeighbor(op.rng, current)
		if err != nil {
			return nil, 0, err
		}
		score, err := scoreCandidate(scratch, candidate.Clone())
		if err != nil {
			return nil, 0, err
		}
		temp := op.temperature(i, iterations)
		accept, err := op.acceptance.Accept(op.rng, currentFitness, score, temp)
		if err != nil {
			return nil, 0, err
		}
		if accept {
			current, currentFitness = candidate, score
			if score > bestFitness {
				best, bestFitness = candidate, score
			}
		}
	}
	return best, bestFitness, nil
}

// gradientEpsilon is the step-size floor: SteepestAscent stops shrinking α
// once it falls below this value and treats the step as "numerically zero"
// per spec.md §4.7.
const gradientEpsilon = 1.0

// gradientComponent is one (chromosome, allele) address walked by
// SteepestAscent's gradient vector, carrying the fixed drift direction
// assigned to it at construction. retired components are skipped and no
// longer contribute to the gradient's norm.
type gradientComponent struct {
	name    string
	idx     int
	dir     chromosome.Direction
	retired bool
}

// buildGradient assigns every allele of base a uniformly random drift
// direction, forming the initial gradient vector.
func buildGradient(source *rng.Source, base *dna.DNA) ([]*gradientComponent, error) {
	var components []*gradientComponent
	for _, name := range base.Names() {
		chrom, err := base.Get(name)
		if err != nil {
			return nil, err
		}
		for idx := 0; idx < chrom.Len(); idx++ {
			dir := chromosome.Down
			if source.NextIntn(2) == 1 {
				dir = chromosome.Up
			}
			components = append(components, &gradientComponent{name: name, idx: idx, dir: dir})
		}
	}
	return components, nil
}

// gradientNorm counts still-active components.
func gradientNorm(components []*gradientComponent) int {
	n := 0
	for _, c := range components {
		if !c.retired {
			n++
		}
	}
	return n
}

// applyGradient drifts every active component round(alpha) times along its
// recorded direction, producing a clone of base — alpha below 0.5 rounds to
// zero steps, i.e. no move at all.
func applyGradient(components []*gradientComponent, base *dna.DNA, alpha float64) (*dna.DNA, error) {
	steps := int(math.Round(alpha))
	candidate := base.Clone()
	if steps <= 0 {
		return candidate, nil
	}
	for _, c := range components {
		if c.retired {
			continue
		}
		chrom, err := candidate.Get(c.name)
		if err != nil {
			return nil, err
		}
		for s := 0; s < steps; s++ {
			if err := chrom.MutateDrift(c.idx, c.dir); err != nil {
				return nil, err
			}
		}
	}
	return candidate, nil
}

// retireOne deactivates the first still-active component, shrinking the
// gradient toward zero once a full shrink cycle fails to find an improving
// step along it.
func retireOne(components []*gradientComponent) {
	for _, c := range components {
		if !c.retired {
			c.retired = true
			return
		}
	}
}

// SteepestAscent is spec.md's steepest-ascent gradient search: a per-allele
// drift-direction gradient, an adaptive step α that shrinks by β on
// rejection and grows by β on acceptance, regenerating the putative move at
// a smaller α until it is accepted or numerically zero, retiring the
// unproductive gradient component when a whole shrink cycle fails, and
// terminating once the gradient is exhausted.
type SteepestAscent struct {
	rng    *rng.Source
	alpha0 float64
	beta   float64
}

// NewSteepestAscent constructs a SteepestAscent optimizer with initial step
// alpha0 and growth/shrink factor beta. Panics if alpha0 <= 0 or beta <= 1.
func NewSteepestAscent(source *rng.Source, alpha0, beta float64) *SteepestAscent {
	if alpha0 <= 0 {
		panic("ga: NewSteepestAscent(alpha0<=0)")
	}
	if beta <= 1 {
		panic("ga: NewSteepestAscent(beta<=1)")
	}
	return &SteepestAscent{rng: source, alpha0: alpha0, beta: beta}
}

// Optimize implements Optimizer.
func (op *SteepestAscent) Optimize(target *entity.Entity, iterations int) (*dna.DNA, float64, error) {
	scratch := target.Clone()
	current := target.DNA().Clone()
	currentFitness, err := scoreCandidate(scratch, current.Clone())
	if err != nil {
		return nil, 0, err
	}
	components, err := buildGradient(op.rng, current)
	if err != nil {
		return nil, 0, err
	}
	alpha := op.alpha0

	for i := 0; i < iterations && gradientNorm(components) > 0; i++ {
		accepted := false
		for alpha >= gradientEpsilon {
			putative, err := applyGradient(components, current, alpha)
			if err != nil {
				return nil, 0, err
			}
			score, err := scoreCandidate(scratch, putative.Clone())
			if err != nil {
				return nil, 0, err
			}
			if score > currentFitness {
				current, currentFitness = putative, score
				alpha *= op.beta
				accepted = true
				break
			}
			alpha /= op.beta
		}
		if !accepted {
			retireOne(components)
			alpha = op.alpha0
		}
	}
	return current, currentFitness, nil
}
