package meshgen

import "testing"

func TestNewLatticeMesh_AdjacencySymmetric(t *testing.T) {
	m := NewLatticeMesh(6, 5, 0.5, 42)
	for i := 0; i < m.N(); i++ {
		for _, nb := range m.Adjacent(i) {
			found := false
			for _, back := range m.Adjacent(nb) {
				if back == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %d lists %d as a neighbour, but %d does not list %d back", i, nb, nb, i)
			}
		}
	}
}

func TestNewLatticeMesh_BorderPredicate(t *testing.T) {
	width, height := 4, 3
	m := NewLatticeMesh(width, height, 0, 7)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			want := x == 0 || y == 0 || x == width-1 || y == height-1
			if got := m.IsOnMapBorder(i); got != want {
				t.Errorf("cell (%d,%d): IsOnMapBorder = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestNewLatticeMesh_InteriorHasEightNeighbours(t *testing.T) {
	m := NewLatticeMesh(5, 5, 0, 1)
	// cell (2,2) is fully interior on a 5x5 lattice.
	i := 2*5 + 2
	if got := len(m.Adjacent(i)); got != 8 {
		t.Errorf("interior cell has %d neighbours, want 8", got)
	}
}

func TestNewLatticeMesh_NoEmptyAdjacency(t *testing.T) {
	m := NewLatticeMesh(3, 3, 0.3, 9)
	for i := 0; i < m.N(); i++ {
		if len(m.Adjacent(i)) == 0 {
			t.Errorf("cell %d has no neighbours", i)
		}
	}
}

func TestPoints_MatchesCoordinates(t *testing.T) {
	m := NewLatticeMesh(3, 2, 0, 3)
	pts := m.Points()
	if len(pts) != 2*m.N() {
		t.Fatalf("Points() returned %d entries, want %d", len(pts), 2*m.N())
	}
	for i := 0; i < m.N(); i++ {
		if pts[i*2] != m.X[i] || pts[i*2+1] != m.Y[i] {
			t.Errorf("cell %d: Points mismatch with X/Y", i)
		}
	}
}

func TestNewHeightfield_Bounded(t *testing.T) {
	m := NewLatticeMesh(10, 10, 0.4, 11)
	h := NewHeightfield(m, 11)
	if len(h) != m.N() {
		t.Fatalf("heightfield has %d entries, want %d", len(h), m.N())
	}
	for i, v := range h {
		if v < -1 || v > 1 {
			t.Errorf("cell %d: height %v outside expected range", i, v)
		}
	}
}

func TestNewHeightfield_Deterministic(t *testing.T) {
	m := NewLatticeMesh(8, 8, 0.2, 5)
	a := NewHeightfield(m, 99)
	b := NewHeightfield(m, 99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d: heightfield not deterministic for fixed seed", i)
		}
	}
}
