package binheap

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

type Option func(*config)

// WithLogger routes the debug events of the heap to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
