package hydro

import (
	"math"
	"sort"
)

const fillSinksEpsilon = 1e-5

// FillSinks runs the iterative Planchon-Darboux algorithm, raising every
// depression above sea level until water can drain off the mesh. It is not
// used by the default pipeline (GenerateLakes models depressions as lakes
// instead) but is retained for callers that want a sink-free height field,
// e.g. for comparison or for mesh representations without a lake model.
func FillSinks(h []float64, mesh Mesh, seaLevel float64) []float64 {
	n := mesh.N()
	out := make([]float64, n)
	for i, height := range h {
		if height > seaLevel {
			out[i] = math.Inf(1)
		} else {
			out[i] = height
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return h[order[i]] < h[order[j]]
	})

	for changed := true; changed; {
		changed = false
		for _, i := range order {
			height := h[i]
			if out[i] == height {
				continue
			}
			for _, nb := range mesh.Adjacent(i) {
				other := out[nb] + fillSinksEpsilon
				if height >= other {
					out[i] = height
					changed = true
					break
				}
				if out[i] > other && other > height {
					out[i] = other
					changed = true
				}
			}
		}
	}

	return out
}
