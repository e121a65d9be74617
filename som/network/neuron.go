package network

import "github.com/katalvlaran/evocore/vector"

// DistanceNeuron computes the Euclidean distance between an input vector and
// its own weight vector (spec.md §4.12).
type DistanceNeuron struct {
	weights vector.Vector[float64]
}

// NewDistanceNeuron wraps an initial weight vector, typically produced by
// topology.Builder.WeightsAtIndex.
func NewDistanceNeuron(weights []float64) *DistanceNeuron {
	return &DistanceNeuron{weights: vector.Vector[float64](weights).Clone()}
}

// Weights returns the neuron's current weight vector.
func (n *DistanceNeuron) Weights() vector.Vector[float64] { return n.weights }

// Compute returns ‖input − weights‖₂.
func (n *DistanceNeuron) Compute(input vector.Vector[float64]) (float64, error) {
	return vector.EuclideanDistance(input, n.weights)
}

// ApplyUpdate adds factor·lr·(input−weights) to the neuron's weights
// elementwise and returns the sum of absolute changes applied (spec.md
// §4.11's per-neuron update and error accumulation).
func (n *DistanceNeuron) ApplyUpdate(input vector.Vector[float64], lr, factor float64) (float64, error) {
	diff, err := input.Sub(n.weights)
	if err != nil {
		return 0, err
	}
	var absSum float64
	scale := lr * factor
	n.weights.Update(func(i int, w float64) float64 {
		delta := scale * diff[i]
		if delta < 0 {
			absSum -= delta
		} else {
			absSum += delta
		}
		return w + delta
	})
	return absSum, nil
}
