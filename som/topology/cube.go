package topology

import "strconv"

// Cube is a 3D grid lattice with 6-neighbor adjacency (spec.md §4.10).
type Cube struct {
	cfg Config
}

// NewCube constructs a Cube builder from opts.
func NewCube(opts ...Option) *Cube {
	return &Cube{cfg: newConfig(opts...)}
}

func cubeKey(x, y, z int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y) + "," + strconv.Itoa(z)
}

// TotalNodes implements Builder.
func (c *Cube) TotalNodes() int { return c.cfg.Width * c.cfg.Height * c.cfg.Depth }

func (c *Cube) coordFromIndex(i int) (x, y, z int) {
	plane := c.cfg.Width * c.cfg.Height
	z = i / plane
	rem := i % plane
	y = rem / c.cfg.Width
	x = rem % c.cfg.Width
	return
}

// LocationFromIndex implements Builder.
func (c *Cube) LocationFromIndex(i int) string {
	x, y, z := c.coordFromIndex(i)
	return c.LocationFromCoord(x, y, z)
}

// LocationFromCoord implements Builder.
func (c *Cube) LocationFromCoord(coord ...int) string {
	x, y, z := coord[0], coord[1], coord[2]
	wx, ok := wrapOrBound(x, c.cfg.Width, c.cfg.Toroidal)
	if !ok {
		return ""
	}
	wy, ok := wrapOrBound(y, c.cfg.Height, c.cfg.Toroidal)
	if !ok {
		return ""
	}
	wz, ok := wrapOrBound(z, c.cfg.Depth, c.cfg.Toroidal)
	if !ok {
		return ""
	}
	return cubeKey(wx, wy, wz)
}

// WeightsAtIndex implements Builder.
func (c *Cube) WeightsAtIndex(i int) []float64 {
	return c.cfg.weightsAt(i, c.TotalNodes())
}

// CreateNode implements Builder. Neighbor order: Up, Down, Left, Right, In, Out.
func (c *Cube) CreateNode(i int) NeuronLocation {
	x, y, z := c.coordFromIndex(i)
	return NeuronLocation{
		Key: cubeKey(x, y, z),
		Neighbors: []string{
			c.LocationFromCoord(x, y-1, z), // Up
			c.LocationFromCoord(x, y+1, z), // Down
			c.LocationFromCoord(x-1, y, z), // Left
			c.LocationFromCoord(x+1, y, z), // Right
			c.LocationFromCoord(x, y, z+1), // In
			c.LocationFromCoord(x, y, z-1), // Out
		},
	}
}
