package network

import "github.com/katalvlaran/evocore/som/topology"

// Network binds a topology.Builder's lattice to a resolved DistanceLayer and
// LocationMap, giving the learner everything it needs to find a winner and
// walk its neighbor rings (spec.md §4.10-4.12).
type Network struct {
	builder     topology.Builder
	layer       *DistanceLayer
	locs        topology.LocationMap
	rectangular bool
	width       int
}

// New builds a Network from a topology.Builder. The learner's rectangular
// fast path is enabled automatically when builder is a bounded (non-toroidal)
// *topology.Rectangular.
func New(builder topology.Builder) (*Network, error) {
	layer, err := NewDistanceLayer(builder)
	if err != nil {
		return nil, err
	}
	n := &Network{builder: builder, layer: layer, locs: topology.NewLocationMap(builder)}
	// A toroidal lattice wraps (-1, 0) to a real key; a bounded one returns "".
	if r, ok := builder.(*topology.Rectangular); ok && r.LocationFromCoord(-1, 0) == "" {
		n.rectangular = true
		n.width = r.Width()
	}
	return n, nil
}

// Layer returns the underlying DistanceLayer.
func (n *Network) Layer() *DistanceLayer { return n.layer }

// Locations returns the resolved LocationMap.
func (n *Network) Locations() topology.LocationMap { return n.locs }

// Builder returns the underlying topology.Builder.
func (n *Network) Builder() topology.Builder { return n.builder }

// RectangularWidth returns the lattice width and true when the network's
// topology is a bounded row-major rectangular grid — the learner's simpler
// dx/dy fast path applies only in that case (spec.md §4.11).
func (n *Network) RectangularWidth() (int, bool) {
	return n.width, n.rectangular
}
