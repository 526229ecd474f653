package hydro

import "sort"

// Flux computes the per-cell accumulated drainage flux by processing cells
// in descending height order and routing one unit of discharge, plus
// whatever has accumulated upstream, to each cell's steepest-descent
// neighbour. Lake members contribute only at their lake's designated
// outlet (the highest shore point), which emits inflow_flux + area to its
// downhill neighbour.
//
// lakes is mutated in place: each lake's InflowFlux accumulates the
// discharge routed into it through its interior.
func Flux(h []float64, mesh Mesh, lakes []Lake, assoc []int) []float64 {
	n := mesh.N()
	f := make([]float64, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return h[order[i]] > h[order[j]]
	})

	for _, p := range order {
		adj := mesh.Adjacent(p)

		d, hasDownhill := steepestDescent(h, adj, p)

		out := dischargeAt(p, f, lakes, assoc)

		if len(adj) > 2 && hasDownhill && h[d] < h[p] {
			if k := assoc[d]; k != NoLake {
				lakes[k].InflowFlux += out
			} else {
				f[d] += out
			}
		}
	}

	return f
}

// steepestDescent returns the neighbour of p with minimum height, breaking
// ties by first occurrence in mesh order.
func steepestDescent(h []float64, adj []int, p int) (int, bool) {
	best := -1
	for _, nb := range adj {
		if best == -1 || h[nb] < h[best] {
			best = nb
		}
	}
	return best, best != -1
}

// dischargeAt computes the discharge leaving cell p before routing.
func dischargeAt(p int, f []float64, lakes []Lake, assoc []int) float64 {
	k := assoc[p]
	if k == NoLake {
		return f[p] + 1
	}
	if lakes[k].HighestShorePoint == p {
		return lakes[k].InflowFlux + float64(lakes[k].Area)
	}
	return 0
}
