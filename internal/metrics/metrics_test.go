package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewMetrics_RegistersWithoutPanic(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	m.Register(reg)
}

func TestMetrics_LakeCountObservable(t *testing.T) {
	m := NewMetrics()
	m.LakeCount.WithLabelValues("run-1").Set(3)

	got := &dto.Metric{}
	if err := m.LakeCount.WithLabelValues("run-1").Write(got); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got.GetGauge().GetValue() != 3 {
		t.Errorf("LakeCount = %v, want 3", got.GetGauge().GetValue())
	}
}

func TestMetrics_PassDurationObserve(t *testing.T) {
	m := NewMetrics()
	// Must not panic when observing a realistic pass duration.
	m.PassDuration.WithLabelValues("erosion").Observe(12 * time.Millisecond.Seconds())
}

func TestMetrics_TotalFluxIncrements(t *testing.T) {
	m := NewMetrics()
	m.TotalFlux.WithLabelValues("run-1").Add(7)

	got := &dto.Metric{}
	if err := m.TotalFlux.WithLabelValues("run-1").Write(got); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got.GetCounter().GetValue() != 7 {
		t.Errorf("TotalFlux = %v, want 7", got.GetCounter().GetValue())
	}
}

func TestMetrics_ErosionErrorsCounted(t *testing.T) {
	m := NewMetrics()
	m.ErosionErrors.WithLabelValues("exhausted_shores").Inc()

	got := &dto.Metric{}
	if err := m.ErosionErrors.WithLabelValues("exhausted_shores").Write(got); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got.GetCounter().GetValue() != 1 {
		t.Errorf("ErosionErrors = %v, want 1", got.GetCounter().GetValue())
	}
}
