package hydro

// adjMesh is a minimal Mesh backed by an explicit adjacency list, used to
// construct the small hand-built scenarios from spec.md §8.
type adjMesh struct {
	adj    [][]int
	border map[int]bool
}

func newAdjMesh(adj [][]int, border ...int) *adjMesh {
	b := make(map[int]bool, len(border))
	for _, i := range border {
		b[i] = true
	}
	return &adjMesh{adj: adj, border: b}
}

func (m *adjMesh) N() int                   { return len(m.adj) }
func (m *adjMesh) Adjacent(i int) []int     { return m.adj[i] }
func (m *adjMesh) IsOnMapBorder(i int) bool { return m.border[i] }

// gridMesh is a small rectangular lattice with 4-neighbour adjacency, used
// for tests that want a regular, larger mesh without pulling in meshgen.
type gridMesh struct {
	width, height int
	adj           [][]int
	border        []bool
}

func newGridMesh(width, height int) *gridMesh {
	n := width * height
	g := &gridMesh{width: width, height: height, adj: make([][]int, n), border: make([]bool, n)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			var nbs []int
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= 0 && nx < width && ny >= 0 && ny < height {
					nbs = append(nbs, ny*width+nx)
				}
			}
			g.adj[i] = nbs
			g.border[i] = x == 0 || y == 0 || x == width-1 || y == height-1
		}
	}
	return g
}

func (g *gridMesh) N() int                   { return len(g.adj) }
func (g *gridMesh) Adjacent(i int) []int     { return g.adj[i] }
func (g *gridMesh) IsOnMapBorder(i int) bool { return g.border[i] }
