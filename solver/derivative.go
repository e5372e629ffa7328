package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/loss"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
)

const (
	DefaultLearningRate      = 0.01
	DefaultMaxIter           = 1000
	DefaultMinDerivativeSize = 1e-3
)

// Derivative is an iterative solver. Each iteration evaluates the configured
// derivative function; it stops once the derivative's 2-norm is at most the
// minimum size, otherwise it steps w ← w − learningRate·derivative.
//
// Running out of iterations is not an error: the current weights are
// returned and a *errors.ConvergenceWarning is emitted through errors.Warn.
type Derivative struct {
	derivative        loss.DerivativeFunc
	learningRate      float64
	maxIter           int
	minDerivativeSize float64
	verbose           bool
	logger            log.Logger
}

// Option configures a Derivative solver.
type Option func(*Derivative)

// WithLearningRate sets the step size. Must be positive.
func WithLearningRate(lr float64) Option {
	return func(d *Derivative) {
		d.learningRate = lr
	}
}

// WithMaxIter sets the iteration budget. Zero returns the initial weights.
func WithMaxIter(n int) Option {
	return func(d *Derivative) {
		d.maxIter = n
	}
}

// WithMinDerivativeSize sets the early-stopping threshold on the derivative norm.
func WithMinDerivativeSize(size float64) Option {
	return func(d *Derivative) {
		d.minDerivativeSize = size
	}
}

// WithVerbose logs every iteration at Info level.
func WithVerbose(verbose bool) Option {
	return func(d *Derivative) {
		d.verbose = verbose
	}
}

// WithLogger replaces the solver's logger.
func WithLogger(logger log.Logger) Option {
	return func(d *Derivative) {
		d.logger = logger
	}
}

// NewDerivative creates a Derivative solver around fn, which is usually one of
// the loss package functions.
func NewDerivative(fn loss.DerivativeFunc, opts ...Option) (Derivative, error) {
	d := Derivative{
		derivative:        fn,
		learningRate:      DefaultLearningRate,
		maxIter:           DefaultMaxIter,
		minDerivativeSize: DefaultMinDerivativeSize,
	}
	for _, opt := range opts {
		opt(&d)
	}
	if d.logger == nil {
		d.logger = log.GetLoggerWithName("solver")
	}
	d.logger = d.logger.With(log.SolverNameKey, d.Name())

	if err := d.validate(); err != nil {
		return Derivative{}, err
	}
	return d, nil
}

func (d Derivative) validate() error {
	if d.derivative == nil {
		return errors.NewValidationError("derivative", "derivative function is required", nil)
	}
	if d.learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", d.learningRate)
	}
	if d.maxIter < 0 {
		return errors.NewValidationError("max_iter", "must be non-negative", d.maxIter)
	}
	if d.minDerivativeSize < 0 {
		return errors.NewValidationError("min_derivative_size", "must be non-negative", d.minDerivativeSize)
	}
	return nil
}

func (Derivative) Name() string { return "Derivative" }

// LearningRate returns the configured step size.
func (d Derivative) LearningRate() float64 { return d.learningRate }

// MaxIter returns the iteration budget.
func (d Derivative) MaxIter() int { return d.maxIter }

// MinDerivativeSize returns the early-stopping threshold.
func (d Derivative) MinDerivativeSize() float64 { return d.minDerivativeSize }

// GetParams returns the solver hyperparameters.
func (d Derivative) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"learning_rate":       d.learningRate,
		"max_iter":            d.maxIter,
		"min_derivative_size": d.minDerivativeSize,
		"verbose":             d.verbose,
	}
}

// Optimize runs the descent loop starting from a copy of w.
func (d Derivative) Optimize(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	logger := d.logger
	if logger == nil {
		logger = log.GetLoggerWithName("solver")
	}

	current := matrix.CopyVec(w)
	var size float64
	warnedNumerical := false

	for iter := 0; iter < d.maxIter; iter++ {
		deriv, err := d.derivative(current, X, y)
		if err != nil {
			return nil, err
		}
		size = mat.Norm(deriv, 2)

		if d.verbose {
			logger.Info("derivative solver iteration",
				log.IterationKey, iter,
				log.WeightsKey, matrix.VecToSlice(current),
				log.DerivativeSizeKey, size,
			)
		}

		if size <= d.minDerivativeSize {
			if d.verbose {
				logger.Info("early stopping, derivative is below threshold",
					log.IterationKey, iter,
					log.MinDerivativeSizeKey, d.minDerivativeSize,
				)
			}
			return current, nil
		}

		current.AddScaledVec(current, -d.learningRate, deriv)

		if !warnedNumerical {
			if warn := errors.CheckFinite("Derivative.Optimize", current.RawVector().Data, iter); warn != nil {
				errors.Warn(warn)
				warnedNumerical = true
			}
		}
	}

	if d.maxIter > 0 {
		errors.Warn(errors.NewConvergenceWarning(d.Name(), d.maxIter, size))
	}
	return current, nil
}
