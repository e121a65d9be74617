package learn

import (
	"math"

	"github.com/katalvlaran/evocore/som/network"
	"github.com/katalvlaran/evocore/vector"
)

// Learner trains a network.Network's weights against a stream of input
// vectors (spec.md §4.11).
type Learner struct {
	net            *network.Network
	cfg            Config
	squaredRadius2 float64
	keyToIndex     map[string]int
}

// New builds a Learner bound to net, caching squaredRadius2 = 2·r² and a
// key→index lookup for the BFS ring walk.
func New(net *network.Network, opts ...Option) *Learner {
	cfg := newConfig(opts...)
	return &Learner{
		net:            net,
		cfg:            cfg,
		squaredRadius2: 2 * cfg.LearningRadius * cfg.LearningRadius,
		keyToIndex:     indexByKey(net),
	}
}

func indexByKey(net *network.Network) map[string]int {
	builder := net.Builder()
	total := builder.TotalNodes()
	m := make(map[string]int, total)
	for i := 0; i < total; i++ {
		m[builder.LocationFromIndex(i)] = i
	}
	return m
}

// Run trains the network on a single input and returns the sum of absolute
// weight changes applied across every updated neuron.
func (l *Learner) Run(input vector.Vector[float64]) (float64, error) {
	winner, _, err := l.net.Layer().Winner(input)
	if err != nil {
		return 0, err
	}
	if l.cfg.LearningRadius == 0 {
		return l.net.Layer().NeuronAt(winner).ApplyUpdate(input, l.cfg.LearningRate, 1)
	}
	if width, ok := l.net.RectangularWidth(); ok {
		return l.runRectangular(input, winner, width)
	}
	return l.runTopology(input, winner)
}

// RunEpoch trains on every input in turn and returns the sum of their errors.
func (l *Learner) RunEpoch(inputs []vector.Vector[float64]) (float64, error) {
	var total float64
	for _, input := range inputs {
		e, err := l.Run(input)
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}

// runRectangular is the closed-form dx/dy fast path for a bounded row-major
// rectangular lattice (spec.md §4.11).
func (l *Learner) runRectangular(input vector.Vector[float64], winner, width int) (float64, error) {
	wx, wy := winner%width, winner/width
	layer := l.net.Layer()
	var errSum float64
	for j := 0; j < layer.Len(); j++ {
		dx := j%width - wx
		dy := j/width - wy
		factor := math.Exp(-float64(dx*dx+dy*dy) / l.squaredRadius2)
		e, err := layer.NeuronAt(j).ApplyUpdate(input, l.cfg.LearningRate, factor)
		if err != nil {
			return 0, err
		}
		errSum += e
	}
	return errSum, nil
}

// runTopology is the general BFS ring-expansion variant used for every
// lattice kind except a bounded rectangular grid, which takes
// runRectangular (spec.md §4.11).
func (l *Learner) runTopology(input vector.Vector[float64], winner int) (float64, error) {
	builder := l.net.Builder()
	locs := l.net.Locations()
	layer := l.net.Layer()

	winnerKey := builder.LocationFromIndex(winner)
	visited := map[string]bool{winnerKey: true}
	ring := []string{winnerKey}

	var errSum float64
	maxRings := layer.Len()
	for k := 0; k <= maxRings && len(ring) > 0; k++ {
		factor := math.Exp(-float64(k*k) / l.squaredRadius2)
		var next []string
		for _, key := range ring {
			idx, ok := l.keyToIndex[key]
			if !ok {
				continue
			}
			e, err := layer.NeuronAt(idx).ApplyUpdate(input, l.cfg.LearningRate, factor)
			if err != nil {
				return 0, err
			}
			errSum += e

			loc, err := locs.Resolve(key)
			if err != nil {
				return 0, err
			}
			for _, neighborKey := range loc.Neighbors {
				if neighborKey == "" || visited[neighborKey] {
					continue
				}
				visited[neighborKey] = true
				next = append(next, neighborKey)
			}
		}
		ring = next
	}
	return errSum, nil
}
