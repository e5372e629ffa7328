package autoreg

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mathext/prng"

	"github.com/YuminosukeSato/stratfit/linear"
	"github.com/YuminosukeSato/stratfit/pkg/log"
)

type config struct {
	linearOpts []linear.Option
	noise      func() rand.Source
	logger     log.Logger
}

// Option configures a Model.
type Option func(*config)

// WithRandSource sets the source of the initial weights drawn by Fit.
func WithRandSource(src rand.Source) Option {
	return func(c *config) {
		c.linearOpts = append(c.linearOpts, linear.WithRandSource(src))
	}
}

// WithNoiseSource sets the factory called on every Predict to obtain the
// source of the simulated noise. A nil fn keeps the clock seeded default.
func WithNoiseSource(fn func() rand.Source) Option {
	return func(c *config) {
		if fn != nil {
			c.noise = fn
		}
	}
}

// WithLogger sets the logger used by the model and its regression.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
		c.linearOpts = append(c.linearOpts, linear.WithLogger(logger))
	}
}

// ClockSource returns a Mersenne Twister seeded from the wall clock.
func ClockSource() rand.Source {
	src := prng.NewMT19937()
	src.Seed(uint64(time.Now().UnixNano()))
	return src
}

func newConfig(opts []Option) config {
	c := config{noise: ClockSource}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.GetLoggerWithName("autoreg")
	}
	return c
}
