package hydro

import (
	"container/heap"
	"fmt"

	"hydromesh/internal/hydroerr"
)

// NoLake is the sentinel lake-id stored in the association array for cells
// that belong to no lake.
const NoLake = -1

// Lake is a maximal connected region of cells sharing a water level,
// determined by the lowest outflow pass on its boundary. InflowFlux starts
// at zero and is only ever mutated by Flux.
type Lake struct {
	WaterLevel        float64
	Area              int
	HighestShorePoint int
	InflowFlux        float64
}

// lakeBuilder is the mutable growth state for one lake, keyed by a compact
// lake id assigned in seeding order. Lake ids are never reused: a merge
// leaves the dissolved id's builder as an unreferenced placeholder.
type lakeBuilder struct {
	waterLevel        float64
	area              int
	highestShorePoint int
	shores            shoreHeap
	dissolved         bool
}

// GenerateLakes grows lakes from local minima by repeatedly absorbing the
// lowest shore point, merging with any lake it touches, and terminating
// when an outward downhill neighbour or the map border is reached.
//
// It returns a compact Lake slice indexed by lake id and a per-cell
// association array L where L[i] is the id of the lake containing cell i,
// or NoLake. An id dissolved by a merge keeps its entry in the slice, but
// no cell's association references it. This is the "implementers may instead dedupe by id" variant
// spec.md §9 permits, in place of publishing one duplicated Lake record per
// member cell; Flux is written against this representation.
func GenerateLakes(h []float64, mesh Mesh, seaLevel float64) ([]Lake, []int, error) {
	if err := validate(h, mesh); err != nil {
		return nil, nil, err
	}

	n := mesh.N()
	assoc := make([]int, n)
	for i := range assoc {
		assoc[i] = NoLake
	}

	var builders []*lakeBuilder

	// Start at every strict local minimum above sea level: a cell whose
	// every neighbour is strictly higher. This guarantees every depression
	// is seeded exactly once; flat regions never spawn duplicate lakes.
	for i := 0; i < n; i++ {
		if h[i] <= seaLevel || assoc[i] != NoLake {
			continue
		}
		if !isStrictLocalMin(h, mesh, i) {
			continue
		}

		b := &lakeBuilder{
			waterLevel:        h[i],
			area:              1,
			highestShorePoint: i,
		}
		for _, nb := range mesh.Adjacent(i) {
			heap.Push(&b.shores, shorePoint{id: nb, height: h[nb]})
		}

		lakeID := len(builders)
		builders = append(builders, b)
		assoc[i] = lakeID

		if err := expandLake(lakeID, h, mesh, builders, assoc); err != nil {
			return nil, nil, err
		}
	}

	if err := checkNoStaleReferences(assoc, builders); err != nil {
		return nil, nil, err
	}

	lakes := make([]Lake, len(builders))
	for id, b := range builders {
		lakes[id] = Lake{
			WaterLevel:        b.waterLevel,
			Area:              b.area,
			HighestShorePoint: b.highestShorePoint,
		}
	}

	return lakes, assoc, nil
}

func isStrictLocalMin(h []float64, mesh Mesh, i int) bool {
	for _, nb := range mesh.Adjacent(i) {
		if h[nb] <= h[i] {
			return false
		}
	}
	return true
}

// expandLake grows the lake identified by lakeID until it spills. Recursion
// in the original algorithm is replaced with an explicit loop so depth
// cannot overflow the stack on large meshes, per spec.md §9.
func expandLake(lakeID int, h []float64, mesh Mesh, builders []*lakeBuilder, assoc []int) error {
	for {
		b := builders[lakeID]
		if b.shores.Len() == 0 {
			return hydroerr.Wrap(hydroerr.ErrExhaustedShores, fmt.Sprintf("lake %d", lakeID))
		}
		s := popShore(&b.shores)

		if other := assoc[s.id]; other != NoLake && other != lakeID {
			mergeLakes(lakeID, other, builders, assoc)
			b = builders[lakeID]
		}

		b.waterLevel = s.height
		b.area++
		b.highestShorePoint = s.id
		assoc[s.id] = lakeID

		if !canExpandFrom(h, mesh, assoc, lakeID, s) {
			return nil
		}

		for _, nb := range mesh.Adjacent(s.id) {
			if assoc[nb] != lakeID {
				heap.Push(&b.shores, shorePoint{id: nb, height: h[nb]})
			}
		}
	}
}

// canExpandFrom reports whether the lake can keep growing past the cell it
// just absorbed: every neighbour must be at or above the new water level
// (or already part of the lake), and the cell must not sit on the map
// border.
func canExpandFrom(h []float64, mesh Mesh, assoc []int, lakeID int, s shorePoint) bool {
	if mesh.IsOnMapBorder(s.id) {
		return false
	}
	for _, nb := range mesh.Adjacent(s.id) {
		if h[nb] < s.height && assoc[nb] != lakeID {
			return false
		}
	}
	return true
}

// mergeLakes dissolves otherID into keepID: its shore points move over, its
// cells are remapped, and its area is folded in (minus the shared merge
// point so it is not double-counted). The dissolved builder is marked as a
// stale placeholder and must never be referenced again.
func mergeLakes(keepID, otherID int, builders []*lakeBuilder, assoc []int) {
	keep := builders[keepID]
	other := builders[otherID]

	for other.shores.Len() > 0 {
		heap.Push(&keep.shores, heap.Pop(&other.shores))
	}

	for i, id := range assoc {
		if id == otherID {
			assoc[i] = keepID
		}
	}

	keep.area += other.area - 1
	other.shores = nil
	other.dissolved = true
}

// checkNoStaleReferences asserts that every association points at a live
// lake builder. A failure here means merge bookkeeping has a bug: it is an
// implementation error, not a possible outcome of valid input.
func checkNoStaleReferences(assoc []int, builders []*lakeBuilder) error {
	for i, id := range assoc {
		if id == NoLake {
			continue
		}
		if id < 0 || id >= len(builders) || builders[id].dissolved {
			return hydroerr.Wrap(hydroerr.ErrStaleLakeReference, fmt.Sprintf("cell %d references lake %d", i, id))
		}
	}
	return nil
}
