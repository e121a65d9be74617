package network

import (
	"github.com/katalvlaran/evocore/som/topology"
	"github.com/katalvlaran/evocore/vector"
)

// DistanceLayer is an ordered array of DistanceNeurons, one per lattice
// position, indexed identically to the owning topology.Builder (spec.md
// §4.12).
type DistanceLayer struct {
	neurons []*DistanceNeuron
}

// NewDistanceLayer builds one DistanceNeuron per lattice position, sourcing
// initial weights from builder.WeightsAtIndex. Returns ErrEmptyLayer if the
// builder reports zero nodes.
func NewDistanceLayer(builder topology.Builder) (*DistanceLayer, error) {
	total := builder.TotalNodes()
	if total <= 0 {
		return nil, ErrEmptyLayer
	}
	neurons := make([]*DistanceNeuron, total)
	for i := 0; i < total; i++ {
		neurons[i] = NewDistanceNeuron(builder.WeightsAtIndex(i))
	}
	return &DistanceLayer{neurons: neurons}, nil
}

// Len returns the number of neurons in the layer.
func (l *DistanceLayer) Len() int { return len(l.neurons) }

// NeuronAt returns the neuron at row-major index i.
func (l *DistanceLayer) NeuronAt(i int) *DistanceNeuron { return l.neurons[i] }

// Compute returns the distance every neuron reports for input, in index order.
func (l *DistanceLayer) Compute(input vector.Vector[float64]) ([]float64, error) {
	out := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		d, err := n.Compute(input)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Winner returns the argmin index and the full per-neuron distance vector.
func (l *DistanceLayer) Winner(input vector.Vector[float64]) (int, []float64, error) {
	outputs, err := l.Compute(input)
	if err != nil {
		return 0, nil, err
	}
	best := 0
	for i := 1; i < len(outputs); i++ {
		if outputs[i] < outputs[best] {
			best = i
		}
	}
	return best, outputs, nil
}
