package topology

import "strconv"

// Rectangular is a 2D grid lattice with 4-neighbor (Up, Down, Left, Right)
// adjacency (spec.md §4.10).
type Rectangular struct {
	cfg Config
}

// NewRectangular constructs a Rectangular builder from opts.
func NewRectangular(opts ...Option) *Rectangular {
	return &Rectangular{cfg: newConfig(opts...)}
}

// TotalNodes implements Builder.
func (r *Rectangular) TotalNodes() int { return r.cfg.Width * r.cfg.Height }

// Width returns the lattice's row length.
func (r *Rectangular) Width() int { return r.cfg.Width }

// Height returns the lattice's column length.
func (r *Rectangular) Height() int { return r.cfg.Height }

func rectKey(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

func wrapOrBound(coord, size int, toroidal bool) (int, bool) {
	if coord >= 0 && coord < size {
		return coord, true
	}
	if !toroidal {
		return 0, false
	}
	return ((coord % size) + size) % size, true
}

// LocationFromIndex implements Builder.
func (r *Rectangular) LocationFromIndex(i int) string {
	x, y := i%r.cfg.Width, i/r.cfg.Width
	return r.LocationFromCoord(x, y)
}

// LocationFromCoord implements Builder.
func (r *Rectangular) LocationFromCoord(coord ...int) string {
	x, y := coord[0], coord[1]
	wx, ok := wrapOrBound(x, r.cfg.Width, r.cfg.Toroidal)
	if !ok {
		return ""
	}
	wy, ok := wrapOrBound(y, r.cfg.Height, r.cfg.Toroidal)
	if !ok {
		return ""
	}
	return rectKey(wx, wy)
}

// WeightsAtIndex implements Builder.
func (r *Rectangular) WeightsAtIndex(i int) []float64 {
	return r.cfg.weightsAt(i, r.TotalNodes())
}

// CreateNode implements Builder. Neighbor order: Up, Down, Left, Right.
func (r *Rectangular) CreateNode(i int) NeuronLocation {
	x, y := i%r.cfg.Width, i/r.cfg.Width
	return NeuronLocation{
		Key: rectKey(x, y),
		Neighbors: []string{
			r.LocationFromCoord(x, y-1), // Up
			r.LocationFromCoord(x, y+1), // Down
			r.LocationFromCoord(x-1, y), // Left
			r.LocationFromCoord(x+1, y), // Right
		},
	}
}
