package topology

// Hexagonal is a 2D hex-grid lattice (odd-row offset coordinates) whose
// neighbor order depends on row parity (spec.md §4.10).
type Hexagonal struct {
	cfg Config
}

// NewHexagonal constructs a Hexagonal builder from opts.
func NewHexagonal(opts ...Option) *Hexagonal {
	return &Hexagonal{cfg: newConfig(opts...)}
}

// TotalNodes implements Builder.
func (h *Hexagonal) TotalNodes() int { return h.cfg.Width * h.cfg.Height }

// LocationFromIndex implements Builder.
func (h *Hexagonal) LocationFromIndex(i int) string {
	x, y := i%h.cfg.Width, i/h.cfg.Width
	return h.LocationFromCoord(x, y)
}

// LocationFromCoord implements Builder.
func (h *Hexagonal) LocationFromCoord(coord ...int) string {
	x, y := coord[0], coord[1]
	wx, ok := wrapOrBound(x, h.cfg.Width, h.cfg.Toroidal)
	if !ok {
		return ""
	}
	wy, ok := wrapOrBound(y, h.cfg.Height, h.cfg.Toroidal)
	if !ok {
		return ""
	}
	return rectKey(wx, wy)
}

// WeightsAtIndex implements Builder.
func (h *Hexagonal) WeightsAtIndex(i int) []float64 {
	return h.cfg.weightsAt(i, h.TotalNodes())
}

// CreateNode implements Builder.
//
// Even row neighbor order: LeftUp, Up, RightUp, Right, Down, Left.
// Odd row neighbor order: Left, Up, Right, RightDown, Down, LeftDown.
func (h *Hexagonal) CreateNode(i int) NeuronLocation {
	x, y := i%h.cfg.Width, i/h.cfg.Width
	var neighbors []string
	if y%2 == 0 {
		neighbors = []string{
			h.LocationFromCoord(x-1, y-1), // LeftUp
			h.LocationFromCoord(x, y-1),   // Up
			h.LocationFromCoord(x+1, y-1), // RightUp
			h.LocationFromCoord(x+1, y),   // Right
			h.LocationFromCoord(x, y+1),   // Down
			h.LocationFromCoord(x-1, y),   // Left
		}
	} else {
		neighbors = []string{
			h.LocationFromCoord(x-1, y),   // Left
			h.LocationFromCoord(x, y-1),   // Up
			h.LocationFromCoord(x+1, y),   // Right
			h.LocationFromCoord(x+1, y+1), // RightDown
			h.LocationFromCoord(x, y+1),   // Down
			h.LocationFromCoord(x-1, y+1), // LeftDown
		}
	}
	return NeuronLocation{Key: rectKey(x, y), Neighbors: neighbors}
}
