package preprocessing

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
)

func sample() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
}

func TestStandardScalerFit(t *testing.T) {
	s := NewStandardScaler()
	require.NoError(t, s.Fit(sample()))

	assert.True(t, s.IsFitted())
	assert.InDeltaSlice(t, []float64{2.5, 25}, s.Means(), 1e-12)
	// 不偏標準偏差: sqrt(5/3)
	sd := math.Sqrt(5.0 / 3.0)
	assert.InDeltaSlice(t, []float64{sd, 10 * sd}, s.StdDevs(), 1e-12)
	assert.Equal(t, "StandardScaler(n_features=2)", s.String())
}

func TestStandardScalerTransform(t *testing.T) {
	X := sample()
	s := NewStandardScaler()

	got, err := s.FitTransform(X)
	require.NoError(t, err)

	other := NewStandardScaler()
	require.NoError(t, other.Fit(X))
	want, err := other.Transform(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))

	// 各列の平均0、標準偏差1
	for j := 0; j < 2; j++ {
		col := mat.Col(nil, j, got)
		var sum, ss float64
		for _, v := range col {
			sum += v
			ss += v * v
		}
		assert.InDelta(t, 0, sum, 1e-12)
		assert.InDelta(t, 1, ss/3, 1e-12)
	}

	back, err := s.InverseTransform(got)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(X, back, 1e-12))

	// 入力は変更されない
	assert.Equal(t, 1.0, X.At(0, 0))
}

func TestStandardScalerNotFitted(t *testing.T) {
	s := NewStandardScaler()

	_, err := s.Transform(sample())
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "StandardScaler", nf.ModelName)
	assert.Equal(t, "Transform", nf.Method)

	_, err = s.InverseTransform(sample())
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "InverseTransform", nf.Method)
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	s := NewStandardScaler()
	require.NoError(t, s.Fit(sample()))

	_, err := s.Transform(mat.NewDense(2, 3, nil))
	var de *errors.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Expected)
	assert.Equal(t, 3, de.Got)
}

func TestStandardScalerEmpty(t *testing.T) {
	s := NewStandardScaler()
	err := s.Fit(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
	assert.False(t, s.IsFitted())
}

func TestStandardScalerZeroVariance(t *testing.T) {
	p, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetLoggerProvider(p)
	t.Cleanup(func() { log.SetLoggerProvider(log.NewZerologProvider(&bytes.Buffer{}, log.LevelInfo)) })

	X := mat.NewDense(3, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
	})
	out, err := NewStandardScaler().FitTransform(X)
	require.NoError(t, err)

	assert.InDelta(t, -1, out.At(0, 0), 1e-12)
	assert.True(t, math.IsNaN(out.At(0, 1)))
	assert.True(t, p.Logger().ContainsMessage("StandardScaler.Transform produced non-finite values: [NaN NaN NaN]"))
}

func TestIdentityTransformer(t *testing.T) {
	X := sample()
	tr := NewIdentityTransformer()

	_, err := tr.Transform(X)
	assert.Error(t, err)

	out, err := tr.FitTransform(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(X, out))

	out.(*mat.Dense).Set(0, 0, 99)
	assert.Equal(t, 1.0, X.At(0, 0))

	back, err := tr.InverseTransform(out)
	require.NoError(t, err)
	assert.True(t, mat.Equal(out, back))
}
