package hydro

import "math"

const (
	erosionRate  = 0.015
	erosionAlpha = 0.125
)

// ErodeStep runs one pass of smoothing, lake generation, flux routing, and
// erosion, returning the updated height field. The caller drives how many
// passes to run; the core does not time-step itself.
func ErodeStep(h []float64, mesh Mesh, seaLevel float64) ([]float64, error) {
	if err := validate(h, mesh); err != nil {
		return nil, err
	}

	smoothed := Smooth(h, mesh)

	lakes, assoc, err := GenerateLakes(smoothed, mesh, seaLevel)
	if err != nil {
		return nil, err
	}

	f := Flux(smoothed, mesh, lakes, assoc)

	n := mesh.N()
	neighbourHeights := make([][]float64, n)
	for i := 0; i < n; i++ {
		adj := mesh.Adjacent(i)
		nh := make([]float64, len(adj))
		for j, nb := range adj {
			nh[j] = smoothed[nb]
		}
		neighbourHeights[i] = nh
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = erodeCell(smoothed[i], neighbourHeights[i], f[i], seaLevel)
	}

	return out, nil
}

// erodeCell computes the new height of a single cell: a flux-driven lowering
// blended with a clamp against the lowest neighbour, weakened to a quarter
// strength and with the clamp dropped below sea level.
func erodeCell(height float64, neighbours []float64, flux, seaLevel float64) float64 {
	fluxTerm := math.Log(flux + 1)
	delta := fluxTerm * erosionRate * height

	if height < seaLevel {
		return height - 0.25*delta
	}

	low := height
	for _, nh := range neighbours {
		if nh < low {
			low = nh
		}
	}
	eroded := height - delta
	clamped := eroded
	if low > eroded {
		clamped = low
	}
	return clamped*(1-erosionAlpha) + eroded*erosionAlpha
}
