// Package logging builds the structured logger shared by the CLI and
// the pipeline, and wraps pipeline stages with request-scoped timing.
package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

// New builds a console-sink logger at the given level ("debug", "info",
// "warn", "error"); unrecognized levels default to info.
func New(level string) core.Logger {
	sink := sinks.NewConsoleSink()

	var opts []mtlog.Option
	opts = append(opts, mtlog.WithSink(sink))

	switch level {
	case "debug":
		opts = append(opts, mtlog.WithMinimumLevel(core.DebugLevel))
	case "warn":
		opts = append(opts, mtlog.WithMinimumLevel(core.WarningLevel))
	case "error":
		opts = append(opts, mtlog.WithMinimumLevel(core.ErrorLevel))
	default:
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	}

	return mtlog.New(opts...)
}

// NewRunID generates the short per-run correlation ID threaded through
// every stage log line.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// Stage runs fn under a logger scoped with RunID and Stage properties,
// logging start, duration, and outcome.
func Stage(ctx context.Context, logger core.Logger, runID, stageName string, fn func(context.Context) error) error {
	ctx = mtlog.PushProperty(ctx, "RunID", runID)
	ctx = mtlog.PushProperty(ctx, "Stage", stageName)
	scoped := logger.WithContext(ctx)

	start := time.Now()
	scoped.InfoContext(ctx, "Stage started")

	err := fn(ctx)

	duration := time.Since(start)
	if err != nil {
		scoped.ErrorContext(ctx, "Stage failed after {Duration}", duration, "error", err)
		return err
	}
	scoped.InfoContext(ctx, "Stage completed in {Duration}", duration)
	return nil
}
