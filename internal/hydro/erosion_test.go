package hydro

import (
	"math"
	"testing"
)

// Scenario 5 (erosion below sea level): a cell at H = -0.1, sea_level = 0,
// with flux F = e-1 (so flux_term = ln(F+1) = 1), erodes by a quarter
// strength and with no neighbour-minimum clamp, which raises the height
// rather than lowering it.
func TestErodeCell_BelowSeaLevel(t *testing.T) {
	flux := math.E - 1
	got := erodeCell(-0.1, []float64{0.2, 0.3}, flux, 0.0)
	want := -0.099625
	if diff := math.Abs(got - want); diff > 1e-9 {
		t.Errorf("erodeCell = %v, want %v (diff %v)", got, want, diff)
	}
	if got <= -0.1 {
		t.Errorf("erodeCell = %v, want a value above -0.1 (erosion raises negative heights)", got)
	}
}

// Above sea level, zero flux leaves height unchanged: flux_term = ln(1) = 0,
// so delta is zero, and the clamp never exceeds the cell's own height.
func TestErodeCell_ZeroFluxNoChange(t *testing.T) {
	got := erodeCell(0.5, []float64{0.6, 0.7}, 0, 0.0)
	if diff := math.Abs(got - 0.5); diff > 1e-12 {
		t.Errorf("erodeCell = %v, want 0.5 unchanged", got)
	}
}

// Above sea level, when flux-driven lowering would take a cell below its
// lowest neighbour, the blend pulls the result back up toward that
// neighbour rather than letting it fall straight through.
func TestErodeCell_ClampsAboveLowestNeighbour(t *testing.T) {
	height, neighbour, flux := 1.0, 0.95, 50.0
	fluxTerm := math.Log(flux + 1)
	delta := fluxTerm * erosionRate * height
	unclamped := height - delta

	got := erodeCell(height, []float64{neighbour}, flux, 0.0)

	if unclamped >= neighbour {
		t.Fatalf("test setup invalid: unclamped erosion (%v) did not fall below the neighbour (%v)", unclamped, neighbour)
	}
	if got <= unclamped {
		t.Errorf("erodeCell = %v, want a value pulled above the unclamped erosion %v", got, unclamped)
	}
	if got >= height {
		t.Errorf("erodeCell = %v, want a value below the original height %v", got, height)
	}
}

func TestErodeStep_PreservesLength(t *testing.T) {
	mesh := newGridMesh(4, 4)
	h := make([]float64, mesh.N())
	for i := range h {
		h[i] = 0.5
	}
	out, err := ErodeStep(h, mesh, 0.0)
	if err != nil {
		t.Fatalf("ErodeStep: %v", err)
	}
	if len(out) != len(h) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(h))
	}
}

func TestErodeStep_RejectsNaN(t *testing.T) {
	mesh := newGridMesh(3, 3)
	h := make([]float64, mesh.N())
	h[0] = math.NaN()
	if _, err := ErodeStep(h, mesh, 0.0); err == nil {
		t.Fatal("expected an error for a NaN height")
	}
}
