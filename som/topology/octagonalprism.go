package topology

import "strconv"

// OctagonalPrism stacks Octagonal layers along z, adding In/Out vertical
// neighbors to each layer's 8 planar octagon/rhombus neighbors (spec.md
// §4.10).
type OctagonalPrism struct {
	cfg Config
}

// NewOctagonalPrism constructs an OctagonalPrism builder from opts. Panics
// if Toroidal is set with an odd Width, Height, or Depth — all three axes
// wrap in a toroidal prism, so all three must be even (spec.md §4.10).
func NewOctagonalPrism(opts ...Option) *OctagonalPrism {
	cfg := newConfig(opts...)
	if cfg.Toroidal && (cfg.Width%2 != 0 || cfg.Height%2 != 0 || cfg.Depth%2 != 0) {
		panic("topology: NewOctagonalPrism toroidal requires even Width, Height, and Depth")
	}
	return &OctagonalPrism{cfg: cfg}
}

func (p *OctagonalPrism) key(x, y, z int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y) + "," + strconv.Itoa(z) + cellSuffix(x, y)
}

// TotalNodes implements Builder.
func (p *OctagonalPrism) TotalNodes() int { return p.cfg.Width * p.cfg.Height * p.cfg.Depth }

func (p *OctagonalPrism) coordFromIndex(i int) (x, y, z int) {
	plane := p.cfg.Width * p.cfg.Height
	z = i / plane
	rem := i % plane
	y = rem / p.cfg.Width
	x = rem % p.cfg.Width
	return
}

// LocationFromIndex implements Builder.
func (p *OctagonalPrism) LocationFromIndex(i int) string {
	x, y, z := p.coordFromIndex(i)
	return p.LocationFromCoord(x, y, z)
}

// LocationFromCoord implements Builder.
func (p *OctagonalPrism) LocationFromCoord(coord ...int) string {
	x, y, z := coord[0], coord[1], coord[2]
	wx, ok := wrapOrBound(x, p.cfg.Width, p.cfg.Toroidal)
	if !ok {
		return ""
	}
	wy, ok := wrapOrBound(y, p.cfg.Height, p.cfg.Toroidal)
	if !ok {
		return ""
	}
	wz, ok := wrapOrBound(z, p.cfg.Depth, p.cfg.Toroidal)
	if !ok {
		return ""
	}
	return p.key(wx, wy, wz)
}

// WeightsAtIndex implements Builder.
func (p *OctagonalPrism) WeightsAtIndex(i int) []float64 {
	return p.cfg.weightsAt(i, p.TotalNodes())
}

// CreateNode implements Builder.
//
// Octagon-cell neighbor order: LeftUp, Up, RightUp, Left, Right, LeftDown,
// Down, RightDown, In, Out. Rhombus-cell neighbor order: Up, Down, Left,
// Right, In, Out.
func (p *OctagonalPrism) CreateNode(i int) NeuronLocation {
	x, y, z := p.coordFromIndex(i)
	vertical := []string{
		p.LocationFromCoord(x, y, z-1), // In
		p.LocationFromCoord(x, y, z+1), // Out
	}
	if isOctagonCell(x, y) {
		neighbors := []string{
			p.LocationFromCoord(x-1, y-1, z), // LeftUp
			p.LocationFromCoord(x, y-1, z),   // Up
			p.LocationFromCoord(x+1, y-1, z), // RightUp
			p.LocationFromCoord(x-1, y, z),   // Left
			p.LocationFromCoord(x+1, y, z),   // Right
			p.LocationFromCoord(x-1, y+1, z), // LeftDown
			p.LocationFromCoord(x, y+1, z),   // Down
			p.LocationFromCoord(x+1, y+1, z), // RightDown
		}
		return NeuronLocation{Key: p.key(x, y, z), Neighbors: append(neighbors, vertical...)}
	}
	neighbors := []string{
		p.LocationFromCoord(x, y-1, z), // Up
		p.LocationFromCoord(x, y+1, z), // Down
		p.LocationFromCoord(x-1, y, z), // Left
		p.LocationFromCoord(x+1, y, z), // Right
	}
	return NeuronLocation{Key: p.key(x, y, z), Neighbors: append(neighbors, vertical...)}
}
