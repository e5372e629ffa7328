package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

func TestBaseEstimatorLifecycle(t *testing.T) {
	e := NewBaseEstimator("StandardScaler")

	assert.Equal(t, "StandardScaler", e.Name())
	assert.False(t, e.IsFitted())
	assert.Equal(t, "not fitted", e.State().String())

	e.SetFitted()
	assert.True(t, e.IsFitted())
	assert.Equal(t, Fitted, e.State())

	e.Reset()
	assert.False(t, e.IsFitted())
}

// meanModel は平均値を予測するだけのテスト用モデル
type meanModel struct {
	BaseEstimator
	mean    float64
	failFit bool
}

func (m *meanModel) Fit(X mat.Matrix, y mat.Vector) error {
	if m.failFit {
		return errors.ErrEmptyData
	}
	var sum float64
	for i := 0; i < y.Len(); i++ {
		sum += y.AtVec(i)
	}
	m.mean = sum / float64(y.Len())
	m.SetFitted()
	return nil
}

func (m *meanModel) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.Name(), "Predict")
	}
	r, _ := X.Dims()
	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, m.mean)
	}
	return out, nil
}

func TestFitPredict(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{2, 4, 6})

	m := &meanModel{BaseEstimator: NewBaseEstimator("mean")}
	var _ Model = m

	pred, err := FitPredict(m, X, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, pred.RawVector().Data)

	failing := &meanModel{BaseEstimator: NewBaseEstimator("mean"), failFit: true}
	_, err = FitPredict(failing, X, y)
	assert.ErrorIs(t, err, errors.ErrEmptyData)
	assert.False(t, failing.IsFitted())
}
