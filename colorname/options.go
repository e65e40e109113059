package colorname

import (
	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
)

type options struct {
	metric      covertree.DistanceFunc[color.Color]
	logger      *covertree.Logger
	treeOptions []covertree.Option
}

// Option configures Source construction.
type Option func(*options)

// WithMetric sets the color distance function used for nearest-name
// lookups. Passing nil keeps the default, color.HSLDistance.
func WithMetric(metric covertree.DistanceFunc[color.Color]) Option {
	return func(o *options) {
		if metric != nil {
			o.metric = metric
		}
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *covertree.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = covertree.NoopLogger()
		}
		o.logger = logger
	}
}

// WithTreeOptions forwards options to the underlying cover tree.
func WithTreeOptions(optFns ...covertree.Option) Option {
	return func(o *options) {
		o.treeOptions = append(o.treeOptions, optFns...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metric: color.HSLDistance,
		logger: covertree.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
