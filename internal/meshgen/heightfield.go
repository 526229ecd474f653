package meshgen

import "github.com/aquilax/go-perlin"

// NewHeightfield synthesizes a per-cell elevation field over mesh using
// fractal Perlin noise, mirroring the teacher's geography.PerlinGenerator:
// alpha 2, beta 2, 3 octaves. Two frequency bands are summed, a low one for
// broad continental shape and a high one for local variation, then rescaled
// from Perlin's [-1, 1] range into [-0.5, 0.5] so the CLI and integration
// tests have a realistic, unscaled height field to feed the hydrological core.
func NewHeightfield(mesh *Mesh, seed int64) []float64 {
	noise := perlin.NewPerlin(2, 2, 3, seed)

	h := make([]float64, mesh.N())
	for i := range h {
		x, y := mesh.X[i], mesh.Y[i]
		low := noise.Noise2D(x*3, y*3)
		high := noise.Noise2D(x*9, y*9)
		h[i] = (low*0.7 + high*0.3) * 0.5
	}
	return h
}
