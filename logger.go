package clustervis

import (
	"log/slog"
	"os"
	"time"

	"github.com/michaelkatsweb/clustervis/kmeans"
)

// Logger wraps slog.Logger with clustervis-specific helpers.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogStart logs the start of a clustering run.
func (l *Logger) LogStart(cfg kmeans.Config, numPoints int, err error) {
	if err != nil {
		l.Error("run start failed",
			"k", cfg.K,
			"points", numPoints,
			"init", cfg.Init.String(),
			"error", err,
		)
	} else {
		l.Info("run started",
			"k", cfg.K,
			"points", numPoints,
			"init", cfg.Init.String(),
			"metric", cfg.Metric.String(),
			"max_iterations", cfg.MaxIterations,
		)
	}
}

// LogTick logs one completed iteration.
func (l *Logger) LogTick(iteration int, inertia float64, converged bool) {
	l.Debug("iteration completed",
		"iteration", iteration,
		"inertia", inertia,
		"converged", converged,
	)
}

// LogComplete logs the end of a run.
func (l *Logger) LogComplete(iterations int, inertia float64, elapsed time.Duration) {
	l.Info("run completed",
		"iterations", iterations,
		"inertia", inertia,
		"elapsed", elapsed,
	)
}

// LogStop logs an explicit stop.
func (l *Logger) LogStop(iterations int) {
	l.Info("run stopped",
		"iterations", iterations,
	)
}

// LogError logs a run failure.
func (l *Logger) LogError(err error) {
	l.Error("run failed",
		"error", err,
	)
}

// LogPredict logs a predict operation.
func (l *Logger) LogPredict(numPoints int, err error) {
	if err != nil {
		l.Error("predict failed",
			"points", numPoints,
			"error", err,
		)
	} else {
		l.Debug("predict completed",
			"points", numPoints,
		)
	}
}
