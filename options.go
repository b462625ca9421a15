package oahash

import "go.uber.org/zap"

type options struct {
	strategy      Strategy
	maxLoadFactor float32
	capacity      int
	logger        *zap.Logger
}

func defaultOptions() options {
	return options{
		strategy:      LinearProbing,
		maxLoadFactor: DefaultMaxLoadFactor,
		capacity:      MinCapacity,
		logger:        zap.NewNop(),
	}
}

// Option configures a Map at construction
type Option func(*options)

// WithStrategy selects the probe strategy. The default is LinearProbing
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithMaxLoadFactor sets the load factor at which inserts grow the table.
// Values outside (0, 1] are ignored.
func WithMaxLoadFactor(f float32) Option {
	return func(o *options) {
		if validateLoadFactor(f) == nil {
			o.maxLoadFactor = f
		}
	}
}

// WithCapacity sets the initial number of slots. Values below MinCapacity
// are raised to it.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < MinCapacity {
			n = MinCapacity
		}
		o.capacity = n
	}
}

// WithLogger sets the logger used to report rehashes
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
