// Package logging provides the structured logger used by internal/terrain
// and cmd/hydromesh, in the teacher's zerolog-console-writer style.
package logging

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	loggerKey contextKey = "logger"
)

// InitLogger initializes the global logger.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// WithRun tags ctx with a run ID (generating one if runID is empty) and a
// logger carrying that ID as a field. This plays the role the teacher's
// request-correlation-ID middleware plays for HTTP handlers, but for one
// terrain generation run instead of one request.
func WithRun(ctx context.Context, runID string) context.Context {
	if runID == "" {
		runID = uuid.New().String()
	}
	logger := log.With().Str("run_id", runID).Logger()
	ctx = context.WithValue(ctx, runIDKey, runID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	return ctx
}

// FromContext returns the logger attached to ctx by WithRun, or the global
// logger if none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return &logger
	}
	return &log.Logger
}

// RunID returns the run ID attached to ctx by WithRun, or "" if none.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// LogError logs an error with context fields.
func LogError(ctx context.Context, err error, message string, fields map[string]interface{}) {
	event := FromContext(ctx).Error().Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// LogInfo logs an info message with context fields.
func LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	event := FromContext(ctx).Info()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
