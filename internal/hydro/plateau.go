package hydro

import "math"

const (
	plateauStart = 0.45
	plateauCap   = (1 - plateauStart) / 4
)

// Plateau is the collaborator-adjacent shaping pass described at the
// interface level by spec.md §4.7: it blends each cell's height toward a
// fixed plateau profile, more strongly the farther the cell is from the
// highest point of the map. The peak itself is left unchanged, and cells at
// distance 0.5 or more take the profile value outright. points is a
// flattened [x0,y0,x1,y1,...] coordinate array parallel to h.
func Plateau(points []float64, h []float64) []float64 {
	peak := 0
	for i, height := range h {
		if height > h[peak] {
			peak = i
		}
	}
	peakX, peakY := points[peak*2], points[peak*2+1]

	out := make([]float64, len(h))
	for i, height := range h {
		x, y := points[i*2], points[i*2+1]
		dist := math.Hypot(x-peakX, y-peakY)
		if dist > 0.5 {
			dist = 0.5
		}
		d2 := (dist / 0.5) * (dist / 0.5)

		out[i] = (1-d2)*height + d2*plateauInterpolate(height)
	}
	return out
}

func plateauInterpolate(h float64) float64 {
	norm := 1 - (h-plateauStart)/(1-plateauStart)
	return plateauStart + (1-norm*norm)*plateauCap
}
