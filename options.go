package dynarray

import (
	"github.com/rs/zerolog"
)

type options struct {
	logger          zerolog.Logger
	initialCapacity int
}

// Option configures a buffer at construction time.
type Option func(*options)

// WithLogger installs a logger; capacity transitions are logged at debug
// level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity preallocates storage for at least n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

func applyOptions(opts []Option) options {
	config := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
