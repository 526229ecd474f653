// Package terrain is the service-layer wrapper around package hydro: it
// adds structured logging, Prometheus metrics, context-aware multi-pass
// iteration, and per-pass telemetry around the hydrological core's
// synchronous, caller-driven calls. None of this is part of the core
// itself — package hydro stays single-threaded, non-cancellable, and free
// of logging or metrics per spec, exactly as the teacher's service layer
// wraps pure domain packages with observability rather than folding it in.
package terrain
