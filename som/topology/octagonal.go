package topology

// cellSuffix returns ":O" for an octagonal cell (x,y same parity) and ":R"
// for the rhombus cell filling the gap between them (spec.md §4.10's
// canonicalized suffix rule, applied uniformly to both the 2D and 3D
// octagonal variants — see DESIGN.md's Open Question decision).
func cellSuffix(x, y int) string {
	if (x+y)%2 == 0 {
		return ":O"
	}
	return ":R"
}

func isOctagonCell(x, y int) bool { return (x+y)%2 == 0 }

// Octagonal is a 2D lattice alternating octagon cells (8-connected) with
// rhombus cells filling the gaps (4-connected) (spec.md §4.10).
type Octagonal struct {
	cfg Config
}

// NewOctagonal constructs an Octagonal builder from opts. Panics if
// Toroidal is set with an odd Width or Height (spec.md §4.10: "Toroidal
// lattices require even axis lengths for octagonal variants").
func NewOctagonal(opts ...Option) *Octagonal {
	cfg := newConfig(opts...)
	if cfg.Toroidal && (cfg.Width%2 != 0 || cfg.Height%2 != 0) {
		panic("topology: NewOctagonal toroidal requires even Width and Height")
	}
	return &Octagonal{cfg: cfg}
}

// TotalNodes implements Builder.
func (o *Octagonal) TotalNodes() int { return o.cfg.Width * o.cfg.Height }

func (o *Octagonal) key(x, y int) string {
	return rectKey(x, y) + cellSuffix(x, y)
}

// LocationFromIndex implements Builder.
func (o *Octagonal) LocationFromIndex(i int) string {
	x, y := i%o.cfg.Width, i/o.cfg.Width
	return o.LocationFromCoord(x, y)
}

// LocationFromCoord implements Builder.
func (o *Octagonal) LocationFromCoord(coord ...int) string {
	x, y := coord[0], coord[1]
	wx, ok := wrapOrBound(x, o.cfg.Width, o.cfg.Toroidal)
	if !ok {
		return ""
	}
	wy, ok := wrapOrBound(y, o.cfg.Height, o.cfg.Toroidal)
	if !ok {
		return ""
	}
	return o.key(wx, wy)
}

// WeightsAtIndex implements Builder.
func (o *Octagonal) WeightsAtIndex(i int) []float64 {
	return o.cfg.weightsAt(i, o.TotalNodes())
}

// CreateNode implements Builder.
//
// Octagonal-cell neighbor order: LeftUp, Up, RightUp, Left, Right, LeftDown,
// Down, RightDown. Rhombus-cell neighbor order: Up, Down, Left, Right.
func (o *Octagonal) CreateNode(i int) NeuronLocation {
	x, y := i%o.cfg.Width, i/o.cfg.Width
	if isOctagonCell(x, y) {
		return NeuronLocation{
			Key: o.key(x, y),
			Neighbors: []string{
				o.LocationFromCoord(x-1, y-1), // LeftUp
				o.LocationFromCoord(x, y-1),   // Up
				o.LocationFromCoord(x+1, y-1), // RightUp
				o.LocationFromCoord(x-1, y),   // Left
				o.LocationFromCoord(x+1, y),   // Right
				o.LocationFromCoord(x-1, y+1), // LeftDown
				o.LocationFromCoord(x, y+1),   // Down
				o.LocationFromCoord(x+1, y+1), // RightDown
			},
		}
	}
	return NeuronLocation{
		Key: o.key(x, y),
		Neighbors: []string{
			o.LocationFromCoord(x, y-1), // Up
			o.LocationFromCoord(x, y+1), // Down
			o.LocationFromCoord(x-1, y), // Left
			o.LocationFromCoord(x+1, y), // Right
		},
	}
}
