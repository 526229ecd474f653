// Package hydro implements the hydrological core of a procedural terrain
// generator operating on an irregular planar mesh (a Voronoi tessellation
// of the unit square). Given per-cell elevations it computes lakes, a
// per-cell drainage flux, and an erosion step.
//
// The package makes no assumption about how the mesh was built: callers
// supply their own Mesh implementation (the external Voronoi collaborator
// described by the package's design). Voronoi construction, initial
// height-field synthesis, rendering, and host bindings are out of scope
// here; see internal/meshgen for a reference Mesh used by the terrain tests
// and the CLI, and internal/terrain for a service-style wrapper that adds
// logging, metrics, and multi-pass iteration around this package's calls.
//
// Every exported function here is synchronous and single-threaded: no
// goroutines are spawned, no context is threaded through, and no global
// state is touched. Callers own all buffers passed in and returned.
package hydro
