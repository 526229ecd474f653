package hydro

import (
	"fmt"
	"math"

	"hydromesh/internal/hydroerr"
)

// Mesh is the contract supplied by the external Voronoi collaborator: a
// count of cells, a per-cell adjacency list, and a border predicate.
//
// Implementations must keep adjacency symmetric and stable across calls
// within a single run. The core assumes every interior cell has at least
// three neighbours and that adjacency sizes stay small (roughly 6-10 on a
// real Voronoi mesh), but does not enforce either.
type Mesh interface {
	// N returns the number of cells in the mesh.
	N() int

	// Adjacent returns the unordered neighbours of cell i.
	Adjacent(i int) []int

	// IsOnMapBorder reports whether cell i touches the unit square's
	// boundary.
	IsOnMapBorder(i int) bool
}

// validate rejects malformed input per the core's error handling design:
// NaN heights, negative adjacency entries, and cells with no neighbours
// all have undefined behaviour downstream, so they are caught up front
// instead of producing silent garbage.
func validate(h []float64, mesh Mesh) error {
	n := mesh.N()
	if len(h) != n {
		return hydroerr.Wrap(hydroerr.ErrEmptyAdjacency, fmt.Sprintf("height field has %d entries, mesh has %d cells", len(h), n))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(h[i]) {
			return hydroerr.Wrap(hydroerr.ErrNaNHeight, fmt.Sprintf("cell %d", i))
		}
		adj := mesh.Adjacent(i)
		if len(adj) == 0 {
			return hydroerr.Wrap(hydroerr.ErrEmptyAdjacency, fmt.Sprintf("cell %d", i))
		}
		for _, nb := range adj {
			if nb < 0 {
				return hydroerr.Wrap(hydroerr.ErrNegativeAdjacency, fmt.Sprintf("cell %d neighbour %d", i, nb))
			}
		}
	}
	return nil
}
