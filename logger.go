package runmerge

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with runmerge-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds a source name field to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// LogConfig logs the effective merge configuration.
func (l *Logger) LogConfig(ctx context.Context, header bool, column int, concurrency int) {
	l.InfoContext(ctx, "merge configured",
		"header", header,
		"column", column,
		"load_concurrency", concurrency,
	)
}

// LogHeader logs a discarded header line.
func (l *Logger) LogHeader(ctx context.Context, header string) {
	l.DebugContext(ctx, "header discarded",
		"header", header,
	)
}

// LogSourceLoaded logs a source that produced a sorted run.
func (l *Logger) LogSourceLoaded(ctx context.Context, records int, d time.Duration) {
	l.DebugContext(ctx, "source loaded",
		"records", records,
		"duration", d,
	)
}

// LogSourceSkipped logs a source dropped from the merge.
func (l *Logger) LogSourceSkipped(ctx context.Context, err error) {
	l.WarnContext(ctx, "source skipped",
		"kind", ErrorKind(err),
		"error", err,
	)
}

// LogMerge logs the outcome of the merge pass.
func (l *Logger) LogMerge(ctx context.Context, runs, emitted int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed",
			"runs", runs,
			"emitted", emitted,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "merge completed",
		"runs", runs,
		"emitted", emitted,
		"duration", d,
	)
}
