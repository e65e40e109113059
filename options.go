package covertree

import "log/slog"

// DefaultBase is the expansion constant determining per-level cover
// distances (base^level).
const DefaultBase = 1.3

type options struct {
	base    float64
	logger  *Logger
	metrics MetricsCollector
}

// Option configures tree construction behavior.
type Option func(*options)

// WithBase overrides the expansion constant. Values must be greater than 1;
// anything else is ignored and the default is kept. Trees built with
// different bases produce different shapes but the same query semantics.
func WithBase(base float64) Option {
	return func(o *options) {
		if base > 1 {
			o.base = base
		}
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		base:    DefaultBase,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
