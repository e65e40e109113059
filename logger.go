package covertree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with covertree-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(size int, rootLevel int, maxDistance float64) {
	l.Debug("insert completed",
		"size", size,
		"root_level", rootLevel,
		"max_distance", maxDistance,
	)
}

// LogSearch logs a nearest-neighbor query.
func (l *Logger) LogSearch(size int, err error) {
	if err != nil {
		l.Error("search failed",
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"size", size,
		)
	}
}

// LogBatchSearch logs a batch query.
func (l *Logger) LogBatchSearch(count int, err error) {
	if err != nil {
		l.Error("batch search failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("batch search completed",
			"count", count,
		)
	}
}
