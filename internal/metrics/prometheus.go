// Package metrics holds the Prometheus collectors for terrain generation:
// per-pass durations, lake counts, and flux totals, wired up by
// internal/terrain and served by cmd/hydromesh.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all the Prometheus collectors for one generation run.
type Metrics struct {
	PassDuration  *prometheus.HistogramVec
	LakeCount     *prometheus.GaugeVec
	LakeArea      *prometheus.GaugeVec
	TotalFlux     *prometheus.CounterVec
	ErosionErrors *prometheus.CounterVec
}

// NewMetrics initializes and returns a new Metrics struct.
func NewMetrics() *Metrics {
	return &Metrics{
		PassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hydromesh_pass_duration_seconds",
			Help:    "Duration of one smooth->lakes->flux->erode pass, by stage",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"stage"}),
		LakeCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hydromesh_lake_count",
			Help: "Number of lakes produced by the most recent pass",
		}, []string{"run_id"}),
		LakeArea: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hydromesh_lake_area_total",
			Help: "Total cell area covered by lakes in the most recent pass",
		}, []string{"run_id"}),
		TotalFlux: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hydromesh_flux_total",
			Help: "Cumulative discharge routed across all passes",
		}, []string{"run_id"}),
		ErosionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hydromesh_errors_total",
			Help: "Errors encountered while running erosion passes, by kind",
		}, []string{"kind"}),
	}
}

// Register registers all metrics with the provided registry.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		m.PassDuration,
		m.LakeCount,
		m.LakeArea,
		m.TotalFlux,
		m.ErosionErrors,
	)
}
