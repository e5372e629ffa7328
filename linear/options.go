package linear

import (
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/stratfit/pkg/log"
)

// DefaultThreshold is the probability cut-off used by LogisticRegression.Predict.
const DefaultThreshold = 0.5

type config struct {
	src       rand.Source
	threshold float64
	logger    log.Logger
}

func newConfig(opts []Option) config {
	cfg := config{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		now := uint64(time.Now().UnixNano())
		cfg.src = rand.NewPCG(now, now>>1)
	}
	return cfg
}

// Option configures the models in this package.
type Option func(*config)

// WithRandSource sets the source used to draw the initial weights.
// Models default to a wall-clock seeded source.
func WithRandSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// WithThreshold sets the probability cut-off for LogisticRegression.Predict.
// Must be within [0, 1]. Other models ignore it.
func WithThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// WithLogger replaces the model logger.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
