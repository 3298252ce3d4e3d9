package calculator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with calculator-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// WithRunID tags the logger with a search run id.
func (l *Logger) WithRunID(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id.String()),
	}
}

// WithK adds a k (rank size) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogStart logs the mask a dataset search is about to enumerate.
func (l *Logger) LogStart(ctx context.Context, fields int, fullMask uint32, goal float64) {
	l.InfoContext(ctx, "search started",
		"fields", fields,
		"mask", formatMask(fullMask),
		"goal", goal,
	)
}

// LogSearch logs a dataset search.
func (l *Logger) LogSearch(ctx context.Context, stats SearchStats, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"fields", stats.Fields,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"results", resultsFound,
			"candidates", stats.Candidates,
			"workers", stats.Workers,
			"duration", stats.Duration,
		)
	}
}

// LogCombine logs a cross-dataset combination.
func (l *Logger) LogCombine(ctx context.Context, datasets, keys, kept int, duration time.Duration) {
	l.InfoContext(ctx, "datasets combined",
		"datasets", datasets,
		"keys", keys,
		"kept", kept,
		"duration", duration,
	)
}

// LogProgress logs a search completion percentage.
func (l *Logger) LogProgress(ctx context.Context, percent uint32) {
	l.DebugContext(ctx, "search progress",
		"percent", percent,
	)
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, source string, fields int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset loaded",
			"source", source,
			"fields", fields,
		)
	}
}
