package terrain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hydromesh/internal/hydro"
	"hydromesh/internal/hydroerr"
	"hydromesh/internal/logging"
	"hydromesh/internal/metrics"
)

// Stats is the per-pass telemetry record this package emits for logging and
// metrics. It is presentation data only, not part of the hydrological
// core's data model.
type Stats struct {
	Pass      int
	LakeCount int
	TotalArea int
	TotalFlux float64
	MaxDelta  float64
}

// Generator wraps package hydro with logging, metrics, and multi-pass
// orchestration. The zero value is usable; metrics are only recorded when a
// *metrics.Metrics was supplied via NewGenerator.
type Generator struct {
	metrics *metrics.Metrics
}

// NewGenerator builds a Generator. m may be nil, in which case metrics
// recording is skipped.
func NewGenerator(m *metrics.Metrics) *Generator {
	return &Generator{metrics: m}
}

// RunErosionPasses runs up to passes iterations of the core's
// smooth->lakes->flux->erode pipeline, checking ctx between passes. The
// core itself (spec.md §5) stays synchronous and non-cancellable within a
// single pass; cancellation is only ever observed at the pass boundary,
// which is why this loop — not anything inside package hydro — owns the
// context.
//
// On cancellation or error, it returns the height field as of the last
// completed pass, the Stats collected so far, and the triggering error (ctx
// cancellation is returned using the sentinel ctx.Err() wraps).
func (g *Generator) RunErosionPasses(ctx context.Context, h []float64, mesh hydro.Mesh, seaLevel float64, passes int) ([]float64, []Stats, error) {
	ctx = logging.WithRun(ctx, logging.RunID(ctx))
	runID := logging.RunID(ctx)

	current := append([]float64(nil), h...)
	stats := make([]Stats, 0, passes)

	for p := 0; p < passes; p++ {
		if err := ctx.Err(); err != nil {
			logging.LogInfo(ctx, "erosion passes cancelled", map[string]interface{}{
				"completed_passes": p,
				"requested_passes": passes,
			})
			return current, stats, err
		}

		s, next, err := g.runPass(ctx, p, current, mesh, seaLevel)
		if err != nil {
			g.recordError(classifyError(err))
			return current, stats, fmt.Errorf("pass %d: %w", p, err)
		}

		stats = append(stats, s)
		current = next

		if g.metrics != nil {
			g.metrics.LakeCount.WithLabelValues(runID).Set(float64(s.LakeCount))
			g.metrics.LakeArea.WithLabelValues(runID).Set(float64(s.TotalArea))
			g.metrics.TotalFlux.WithLabelValues(runID).Add(s.TotalFlux)
		}

		logging.LogInfo(ctx, "erosion pass completed", map[string]interface{}{
			"pass":       p,
			"lakes":      s.LakeCount,
			"lake_area":  s.TotalArea,
			"total_flux": s.TotalFlux,
			"max_delta":  s.MaxDelta,
		})
	}

	return current, stats, nil
}

// runPass runs one smooth->lakes->flux->erode cycle, timing each stage.
// Lake generation and flux routing are computed twice — once here for
// telemetry, once again inside hydro.ErodeStep's own pipeline — which is
// safe only because spec.md §8 guarantees GenerateLakes is idempotent on a
// fixed height field; see DESIGN.md for the tradeoff this makes.
func (g *Generator) runPass(ctx context.Context, pass int, h []float64, mesh hydro.Mesh, seaLevel float64) (Stats, []float64, error) {
	start := time.Now()
	smoothed := hydro.Smooth(h, mesh)
	g.observe("smooth", time.Since(start))

	start = time.Now()
	lakes, assoc, err := hydro.GenerateLakes(smoothed, mesh, seaLevel)
	if err != nil {
		return Stats{}, nil, fmt.Errorf("generate lakes: %w", err)
	}
	g.observe("lakes", time.Since(start))

	start = time.Now()
	flux := hydro.Flux(smoothed, mesh, lakes, assoc)
	g.observe("flux", time.Since(start))

	start = time.Now()
	next, err := hydro.ErodeStep(h, mesh, seaLevel)
	if err != nil {
		return Stats{}, nil, fmt.Errorf("erode: %w", err)
	}
	g.observe("erode", time.Since(start))

	s := Stats{Pass: pass}
	live := make(map[int]bool)
	for _, k := range assoc {
		if k == hydro.NoLake || live[k] {
			continue
		}
		live[k] = true
		s.LakeCount++
		s.TotalArea += lakes[k].Area
		s.TotalFlux += lakes[k].InflowFlux
	}
	for _, fl := range flux {
		s.TotalFlux += fl
	}
	for i := range next {
		d := next[i] - h[i]
		if d < 0 {
			d = -d
		}
		if d > s.MaxDelta {
			s.MaxDelta = d
		}
	}

	return s, next, nil
}

func (g *Generator) observe(stage string, d time.Duration) {
	if g.metrics == nil {
		return
	}
	g.metrics.PassDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (g *Generator) recordError(kind string) {
	if g.metrics == nil {
		return
	}
	g.metrics.ErosionErrors.WithLabelValues(kind).Inc()
}

// classifyError maps a wrapped hydroerr value to the short label used on
// the errors_total metric.
func classifyError(err error) string {
	var herr *hydroerr.Error
	if errors.As(err, &herr) {
		return strings.ToLower(herr.Code)
	}
	return "unknown"
}
