// Package autoreg implements an autoregressive AR(p) model on top of the
// linear regression estimators, plus the lag-matrix extractor it is fitted on.
package autoreg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// Extractor turns a time series into a lagged feature matrix and a target.
type Extractor struct {
	order int
}

// NewExtractor returns an extractor for lag order p.
func NewExtractor(p int) Extractor {
	return Extractor{order: p}
}

// Order returns the lag order.
func (e Extractor) Order() int { return e.order }

// Name returns the extractor name.
func (Extractor) Name() string { return "AutoRegExtractor" }

func (e Extractor) check(series []float64) error {
	if e.order < 1 || e.order >= len(series) {
		return errors.NewWrongOrderError(e.order, len(series))
	}
	return nil
}

// ExtractX builds an (n-p)×p matrix where row t holds the p values preceding
// series[t+p], most recent lag in column 0.
func (e Extractor) ExtractX(series []float64) (*mat.Dense, error) {
	if err := e.check(series); err != nil {
		return nil, err
	}
	p := e.order
	rows := len(series) - p
	X := mat.NewDense(rows, p, nil)
	for t := 0; t < rows; t++ {
		for j := 0; j < p; j++ {
			X.Set(t, j, series[t+p-1-j])
		}
	}
	return X, nil
}

// ExtractY returns series[p:] as a new vector.
func (e Extractor) ExtractY(series []float64) (*mat.VecDense, error) {
	if err := e.check(series); err != nil {
		return nil, err
	}
	y := make([]float64, len(series)-e.order)
	copy(y, series[e.order:])
	return mat.NewVecDense(len(y), y), nil
}

// Extract returns both the features and the target.
func (e Extractor) Extract(series []float64) (*mat.Dense, *mat.VecDense, error) {
	X, err := e.ExtractX(series)
	if err != nil {
		return nil, nil, err
	}
	y, err := e.ExtractY(series)
	if err != nil {
		return nil, nil, err
	}
	return X, y, nil
}

// LastWindow returns a 1×p matrix of the p latest values, most recent first.
// Passing it to Model.Predict forecasts past the end of the series, whereas
// the last row of ExtractX ends one step earlier.
func (e Extractor) LastWindow(series []float64) (*mat.Dense, error) {
	if err := e.check(series); err != nil {
		return nil, err
	}
	n := len(series)
	W := mat.NewDense(1, e.order, nil)
	for j := 0; j < e.order; j++ {
		W.Set(0, j, series[n-1-j])
	}
	return W, nil
}
