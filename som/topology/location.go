package topology

// NeuronLocation records one lattice position: its canonical key and its
// ordered neighbor keys (spec.md §3). neighbors[i] is the empty string at a
// bounded lattice edge, or (in toroidal mode) always a key present in the
// owning LocationMap.
type NeuronLocation struct {
	Key       string
	Neighbors []string
}

// Builder owns lattice parameters and exposes index/coordinate lookups and
// initial-weight generation (spec.md §4.10). Every lattice kind (rectangular,
// hexagonal, octagonal, cube, octagonal prism) implements it.
type Builder interface {
	// TotalNodes returns the product of the lattice's dimensions.
	TotalNodes() int

	// LocationFromIndex returns the canonical key for row-major index i.
	LocationFromIndex(i int) string

	// LocationFromCoord returns the canonical key for the given coordinates,
	// or "" if out of range and the lattice is not toroidal.
	LocationFromCoord(coord ...int) string

	// WeightsAtIndex returns the initial weight vector for neuron i.
	WeightsAtIndex(i int) []float64

	// CreateNode builds the NeuronLocation record for row-major index i.
	CreateNode(i int) NeuronLocation
}

// LocationMap is the key -> NeuronLocation map a distance network's
// topology exposes to the learner for neighbor-ring expansion (spec.md §3,
// §4.10's "holder(location, lazy-resolved neighbor holders)").
type LocationMap map[string]*NeuronLocation

// NewLocationMap builds the full map by calling CreateNode for every index.
func NewLocationMap(b Builder) LocationMap {
	m := make(LocationMap, b.TotalNodes())
	for i := 0; i < b.TotalNodes(); i++ {
		node := b.CreateNode(i)
		m[node.Key] = &node
	}
	return m
}

// Resolve looks up key, returning ErrUnresolvedNeighbor if absent. The empty
// key (a bounded lattice edge) resolves to (nil, nil).
func (m LocationMap) Resolve(key string) (*NeuronLocation, error) {
	if key == "" {
		return nil, nil
	}
	loc, ok := m[key]
	if !ok {
		return nil, ErrUnresolvedNeighbor
	}
	return loc, nil
}
