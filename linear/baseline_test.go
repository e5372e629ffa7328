package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

func TestBaselinePredictsMean(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{2, 4, 6, 8})

	m := NewBaseline()
	require.NoError(t, m.Fit(X, y))
	assert.True(t, m.IsFitted())
	assert.Equal(t, []float64{5}, m.Weights().RawVector().Data)

	pred, err := m.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, pred.RawVector().Data)

	// 入力の行数に関わらず学習時の長さを返す
	pred, err = m.Predict(mat.NewDense(1, 3, nil))
	require.NoError(t, err)
	assert.Equal(t, 4, pred.Len())

	assert.Equal(t, "Identity", m.GetParams()["solver"])
}

func TestBaselineEmptyTarget(t *testing.T) {
	m := NewBaseline()
	err := m.Fit(nil, &mat.VecDense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
	assert.False(t, m.IsFitted())
}
