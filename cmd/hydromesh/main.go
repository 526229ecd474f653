// Command hydromesh builds a demo mesh, runs a number of erosion passes
// over it, and reports lake/flux/erosion statistics — a runnable
// demonstration of the hydro/meshgen/terrain packages, in the structural
// style of the teacher's cmd/world-service and cmd/game-server entry
// points.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"hydromesh/internal/logging"
	"hydromesh/internal/meshgen"
	"hydromesh/internal/metrics"
	"hydromesh/internal/terrain"
)

func main() {
	width := flag.Int("width", 64, "lattice mesh width, in cells")
	height := flag.Int("height", 64, "lattice mesh height, in cells")
	jitter := flag.Float64("jitter", 0.6, "width of each lattice point's displacement window, as a fraction of cell spacing (points move at most half of this each way)")
	seed := flag.Int64("seed", 1, "random seed for mesh jitter and height synthesis")
	seaLevel := flag.Float64("sea-level", 0, "sea level threshold")
	passes := flag.Int("passes", 5, "number of erosion passes to run")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	flag.Parse()

	logging.InitLogger()

	m := metrics.NewMetrics()
	reg := prometheus.NewRegistry()
	m.Register(reg)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			log.Info().Str("addr", *metricsAddr).Msg("Serving Prometheus metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("Metrics server stopped unexpectedly")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mesh := meshgen.NewLatticeMesh(*width, *height, *jitter, *seed)
	h := meshgen.NewHeightfield(mesh, *seed)

	log.Info().
		Int("width", *width).
		Int("height", *height).
		Int64("seed", *seed).
		Int("passes", *passes).
		Msg("Starting terrain generation")

	gen := terrain.NewGenerator(m)
	start := time.Now()
	final, stats, err := gen.RunErosionPasses(ctx, h, mesh, *seaLevel, *passes)
	if err != nil {
		log.Error().Err(err).Msg("Erosion passes ended early")
	}

	report(final, stats, time.Since(start))
}

func report(h []float64, stats []terrain.Stats, elapsed time.Duration) {
	fmt.Printf("completed %d pass(es) in %s\n", len(stats), elapsed)
	for _, s := range stats {
		fmt.Printf("  pass %d: lakes=%d area=%d flux=%.2f max_delta=%.5f\n",
			s.Pass, s.LakeCount, s.TotalArea, s.TotalFlux, s.MaxDelta)
	}

	if len(h) == 0 {
		return
	}
	min, max := h[0], h[0]
	for _, v := range h {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	fmt.Printf("final height range: [%.5f, %.5f]\n", min, max)
}
