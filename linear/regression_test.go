package linear

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/loss"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
	"github.com/YuminosukeSato/stratfit/solver"
)

func seeded() Option {
	return WithRandSource(rand.NewPCG(42, 1024))
}

// y = 1 + 2x
func singleToy() (*mat.Dense, *mat.VecDense) {
	X := mat.NewDense(6, 1, []float64{0, 1, 2, 3, 4, 5})
	y := mat.NewVecDense(6, []float64{1, 3, 5, 7, 9, 11})
	return X, y
}

func TestLinearRegressionClosedForm(t *testing.T) {
	X, y := singleToy()

	t.Run("ols", func(t *testing.T) {
		lr := NewLinearRegression(solver.OLS{}, seeded())
		require.NoError(t, lr.Fit(X, y))
		assert.InDelta(t, 1.0, lr.Intercept(), 1e-9)
		assert.InDeltaSlice(t, []float64{2}, lr.Coefficients(), 1e-9)
	})

	t.Run("qr", func(t *testing.T) {
		lr := NewLinearRegression(solver.QR{}, seeded())
		require.NoError(t, lr.Fit(X, y))
		assert.InDeltaSlice(t, []float64{1, 2}, lr.Weights().RawVector().Data, 1e-9)
	})
}

func TestOLSAndQRAgreeOnRandomData(t *testing.T) {
	X, y := createBenchmarkData(200, 5)

	ols := NewLinearRegression(solver.OLS{}, seeded())
	qr := NewLinearRegression(solver.QR{}, seeded())
	require.NoError(t, ols.Fit(X, y))
	require.NoError(t, qr.Fit(X, y))

	assert.InDeltaSlice(t, ols.Weights().RawVector().Data, qr.Weights().RawVector().Data, 1e-8)
}

func TestLinearRegressionFitDoesNotMutateX(t *testing.T) {
	X, y := singleToy()
	before := mat.DenseCopyOf(X)

	lr := NewLinearRegression(solver.OLS{}, seeded())
	require.NoError(t, lr.Fit(X, y))

	assert.True(t, mat.Equal(before, X))
	_, c := X.Dims()
	assert.Equal(t, 1, c)
}

func TestLinearRegressionPredictAndScore(t *testing.T) {
	X, y := singleToy()
	lr := NewLinearRegression(solver.QR{}, seeded())

	pred, err := model.FitPredict(lr, X, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y.RawVector().Data, pred.RawVector().Data, 1e-9)

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-12)

	_, err = lr.Predict(mat.NewDense(2, 2, nil))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

func TestLinearRegressionDerivativeSolver(t *testing.T) {
	X, y := singleToy()
	s, err := solver.NewDerivative(loss.MSEGrad,
		solver.WithLearningRate(0.05),
		solver.WithMaxIter(20000),
		solver.WithMinDerivativeSize(1e-9),
	)
	require.NoError(t, err)

	lr := NewLinearRegression(s, seeded())
	require.NoError(t, lr.Fit(X, y))
	assert.InDeltaSlice(t, []float64{1, 2}, lr.Weights().RawVector().Data, 1e-6)

	params := lr.GetParams()
	assert.Equal(t, "Derivative", params["solver"])
	assert.Equal(t, 0.05, params["solver_learning_rate"])
}

func TestIdentitySolverKeepsInitialWeights(t *testing.T) {
	X, y := singleToy()

	a := NewLinearRegression(solver.Identity{}, WithRandSource(rand.NewPCG(3, 4)))
	b := NewLinearRegression(solver.Identity{}, WithRandSource(rand.NewPCG(3, 4)))
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	assert.Equal(t, a.Weights().RawVector().Data, b.Weights().RawVector().Data)
	assert.Equal(t, 2, a.Weights().Len())
}

func TestPredictBeforeFit(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	s, err := solver.NewDerivative(loss.LogLikelihoodGrad)
	require.NoError(t, err)

	models := []model.Model{
		NewBaseline(),
		NewLinearRegression(solver.OLS{}),
		NewLinearRegression(solver.QR{}),
		NewLogisticRegression(s),
	}
	for _, m := range models {
		t.Run(m.Name(), func(t *testing.T) {
			assert.False(t, m.IsFitted())
			_, err := m.Predict(X)
			var nf *errors.NotFittedError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, m.Name(), nf.ModelName)
		})
	}
}

func TestFailedFitLeavesModelUnfitted(t *testing.T) {
	// 全ての行が同じで XᵀX は特異
	X := mat.NewDense(3, 1, []float64{2, 2, 2})
	y := mat.NewVecDense(3, []float64{1, 2, 3})

	lr := NewLinearRegression(solver.OLS{}, seeded())
	err := lr.Fit(X, y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSingularMatrix))
	assert.False(t, lr.IsFitted())
	assert.Nil(t, lr.Weights())

	// 一度学習したモデルでも失敗すれば未学習に戻る
	good, gy := singleToy()
	require.NoError(t, lr.Fit(good, gy))
	require.True(t, lr.IsFitted())
	require.Error(t, lr.Fit(X, y))
	assert.False(t, lr.IsFitted())
}

func TestFitShapeErrors(t *testing.T) {
	lr := NewLinearRegression(solver.OLS{}, seeded())

	err := lr.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), mat.NewVecDense(2, nil))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

func TestFitLogsAtDebug(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	X, y := singleToy()

	lr := NewLinearRegression(solver.OLS{}, seeded(), WithLogger(logger))
	require.NoError(t, lr.Fit(X, y))

	assert.True(t, logger.ContainsMessage("fit completed"))
	assert.True(t, logger.ContainsField(log.ModelNameKey, "LinearRegression"))
	assert.True(t, logger.ContainsField(log.SolverNameKey, "OLS"))
	assert.True(t, logger.ContainsField(log.SamplesKey, 6.0))
}
