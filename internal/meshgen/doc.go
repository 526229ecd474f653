// Package meshgen is a reference stand-in for the external Voronoi
// collaborator described by package hydro's Mesh interface. It is not part
// of the hydrological core: it exists so the CLI and the integration
// tests have a concrete mesh and a realistic height field to
// run the core against, without depending on a real Voronoi library.
//
// NewLatticeMesh builds a jittered rectangular lattice with Moore
// (8-neighbour) adjacency; NewHeightfield synthesizes elevations over it
// with fractal Perlin noise, mirroring the teacher's
// geography.PerlinGenerator.
package meshgen
