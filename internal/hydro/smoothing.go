package hydro

import "sort"

const smoothAlpha = 0.66

// Smooth applies one neighbourhood-averaging relaxation pass. It processes
// cells in index order; for each cell it blends the cell and its current
// neighbours toward their mean, updating both the cell and its neighbours
// in place. Later cells therefore see earlier updates: this asymmetric
// diffusion is intentional and propagates local means more aggressively
// than a symmetric pass would. Do not "fix" it to be symmetric; erosion is
// tuned against this behaviour.
//
// The input slice is not mutated; Smooth works on and returns a copy.
func Smooth(h []float64, mesh Mesh) []float64 {
	out := append([]float64(nil), h...)
	n := mesh.N()
	for i := 0; i < n; i++ {
		adj := mesh.Adjacent(i)
		blendMean(out, adj, i, smoothAlpha)
	}
	return out
}

const smoothCoastsAlpha = 0.25
const coastBand = 0.015

// SmoothCoasts applies the same in-place asymmetric blend as Smooth, but
// only to cells near sea level, processed in order of increasing distance
// from sea_level, stopping at the first cell outside the coast band.
//
// The input slice is not mutated; SmoothCoasts works on and returns a copy.
func SmoothCoasts(h []float64, mesh Mesh, seaLevel float64) []float64 {
	out := append([]float64(nil), h...)
	n := mesh.N()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return distAbs(out[order[i]], seaLevel) < distAbs(out[order[j]], seaLevel)
	})

	for _, i := range order {
		if distAbs(out[i], seaLevel) > coastBand {
			break
		}
		adj := mesh.Adjacent(i)
		blendMean(out, adj, i, smoothCoastsAlpha)
	}

	return out
}

func distAbs(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// blendMean computes the mean of h[i] and its neighbours, then blends both
// h[i] and each neighbour toward that mean with weight alpha. Neighbours
// already blended earlier in the same pass feed into later means: that is
// the point of the asymmetric update, not a bug.
func blendMean(h []float64, adj []int, i int, alpha float64) {
	sum := h[i]
	for _, nb := range adj {
		sum += h[nb]
	}
	mean := sum / float64(len(adj)+1)

	h[i] = h[i]*(1-alpha) + mean*alpha
	for _, nb := range adj {
		h[nb] = h[nb]*(1-alpha) + mean*alpha
	}
}
