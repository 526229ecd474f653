package meshgen

import "math/rand"

// Mesh is a rectangular lattice of cells with Moore (8-neighbour) adjacency,
// satisfying hydro.Mesh. Cell coordinates are jittered off the regular grid
// so that downstream consumers see a less artificially uniform input than a
// pure grid, while adjacency itself stays fixed to the lattice structure —
// adjacency must be stable across calls within a run, which a jittered
// Delaunay retriangulation would not guarantee.
type Mesh struct {
	Width, Height int

	// X, Y hold each cell's jittered position in the unit square, indexed
	// the same way as the lattice: cell (x, y) is index y*Width+x.
	X, Y []float64

	adjacent [][]int
	border   []bool
}

// NewLatticeMesh builds a Width*Height-cell lattice mesh. jitter is the
// width of each point's displacement window as a fraction of one grid
// cell's spacing: along each axis a point moves by at most jitter/2 of the
// spacing (0 disables jitter); seed drives the jitter's randomness.
func NewLatticeMesh(width, height int, jitter float64, seed int64) *Mesh {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	n := width * height
	m := &Mesh{
		Width:    width,
		Height:   height,
		X:        make([]float64, n),
		Y:        make([]float64, n),
		adjacent: make([][]int, n),
		border:   make([]bool, n),
	}

	r := rand.New(rand.NewSource(seed))
	dx := 1.0 / float64(width)
	dy := 1.0 / float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			cx := (float64(x) + 0.5) * dx
			cy := (float64(y) + 0.5) * dy
			if jitter > 0 {
				cx += (r.Float64()*2 - 1) * jitter * dx * 0.5
				cy += (r.Float64()*2 - 1) * jitter * dy * 0.5
			}
			m.X[i] = cx
			m.Y[i] = cy
			m.border[i] = x == 0 || y == 0 || x == width-1 || y == height-1

			var adj []int
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					if ox == 0 && oy == 0 {
						continue
					}
					nx, ny := x+ox, y+oy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					adj = append(adj, ny*width+nx)
				}
			}
			m.adjacent[i] = adj
		}
	}

	return m
}

// N returns the number of cells in the mesh.
func (m *Mesh) N() int { return len(m.adjacent) }

// Adjacent returns the unordered Moore neighbours of cell i.
func (m *Mesh) Adjacent(i int) []int { return m.adjacent[i] }

// IsOnMapBorder reports whether cell i sits on the lattice's outer ring.
func (m *Mesh) IsOnMapBorder(i int) bool { return m.border[i] }

// Points returns the flattened [x0,y0,x1,y1,...] coordinate array hydro's
// Plateau function expects.
func (m *Mesh) Points() []float64 {
	pts := make([]float64, 0, len(m.X)*2)
	for i := range m.X {
		pts = append(pts, m.X[i], m.Y[i])
	}
	return pts
}
