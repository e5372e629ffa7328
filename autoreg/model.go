package autoreg

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/linear"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
	"github.com/YuminosukeSato/stratfit/solver"
)

// Model is an AR(p) model. The weights are fitted with the held solver on a
// lag matrix from an Extractor; forecasts are simulated by feeding every
// predicted value, plus Gaussian noise of scale Sigma, back in as the most
// recent lag.
//
//	ext := autoreg.NewExtractor(2)
//	X, y, _ := ext.Extract(series)
//	m := autoreg.NewModel(solver.OLS{})
//	_ = m.Fit(X, y)
//	forecast, _ := m.Predict(X, 10)
type Model[S solver.Solver] struct {
	model.BaseEstimator

	reg    *linear.LinearRegression[S]
	order  int
	sigma  float64
	noise  func() rand.Source
	logger log.Logger
}

// NewModel returns an unfitted AR model using s.
func NewModel[S solver.Solver](s S, opts ...Option) *Model[S] {
	cfg := newConfig(opts)
	return &Model[S]{
		BaseEstimator: model.NewBaseEstimator("AutoRegModel"),
		reg:           linear.NewLinearRegression(s, cfg.linearOpts...),
		noise:         cfg.noise,
		logger:        cfg.logger.With(log.ModelNameKey, "AutoRegModel"),
	}
}

// Fit learns the weights on the lag matrix X, records the order as the
// column count of X and Sigma as the sample standard deviation of y, or 0
// when y has a single element.
func (m *Model[S]) Fit(X mat.Matrix, y mat.Vector) (err error) {
	defer errors.Recover(&err, "AutoRegModel.Fit")
	m.Reset()

	if err := m.reg.Fit(X, y); err != nil {
		return err
	}
	_, m.order = X.Dims()
	// the sample deviation of a single value is undefined
	m.sigma = 0
	if y.Len() > 1 {
		m.sigma = stat.StdDev(matrix.VecToSlice(y), nil)
	}
	m.SetFitted()

	m.logger.Debug("fit completed",
		log.OperationKey, log.OperationFit,
		log.OrderKey, m.order,
		log.SigmaKey, m.sigma,
	)
	return nil
}

// Predict simulates numPeriods values forward from the last row of X using a
// fresh noise source, by default seeded from the clock.
func (m *Model[S]) Predict(X mat.Matrix, numPeriods int) (*mat.VecDense, error) {
	return m.PredictWithSource(X, numPeriods, m.noise())
}

// PredictWithSource is Predict with an explicit noise source.
func (m *Model[S]) PredictWithSource(X mat.Matrix, numPeriods int, src rand.Source) (forecast *mat.VecDense, err error) {
	defer errors.Recover(&err, "AutoRegModel.Predict")

	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.Name(), "Predict")
	}
	r, c := X.Dims()
	if c != m.order {
		return nil, errors.NewDimensionError("AutoRegModel.Predict", m.order, c, 1)
	}
	if r == 0 {
		return nil, errors.NewModelError("AutoRegModel.Predict", "empty data", errors.ErrEmptyData)
	}
	if numPeriods < 0 {
		return nil, errors.NewValidationError("numPeriods", "must not be negative", numPeriods)
	}
	if numPeriods == 0 {
		return &mat.VecDense{}, nil
	}

	noise := distuv.Normal{Mu: 0, Sigma: m.sigma, Src: src}
	window := mat.Row(nil, r-1, X)
	values := make([]float64, numPeriods)

	for period := range values {
		mean, err := m.reg.Predict(mat.NewDense(1, m.order, window))
		if err != nil {
			return nil, err
		}
		values[period] = mean.AtVec(0) + noise.Rand()

		// newest value becomes lag 1, oldest lag falls off
		copy(window[1:], window[:m.order-1])
		window[0] = values[period]
	}

	m.logger.Debug("forecast completed",
		log.OperationKey, log.OperationForecast,
		log.PeriodsKey, numPeriods,
	)
	return mat.NewVecDense(numPeriods, values), nil
}

// Order returns the lag order p learned by Fit.
func (m *Model[S]) Order() int { return m.order }

// Sigma returns the noise scale learned by Fit.
func (m *Model[S]) Sigma() float64 { return m.sigma }

// Weights returns a copy of [intercept, lag1, ..., lagp].
func (m *Model[S]) Weights() *mat.VecDense { return m.reg.Weights() }

// Solver returns the held solver.
func (m *Model[S]) Solver() S { return m.reg.Solver() }

// GetParams returns the solver parameters.
func (m *Model[S]) GetParams() map[string]interface{} {
	return m.reg.GetParams()
}
