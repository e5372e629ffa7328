package linear

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
	"github.com/YuminosukeSato/stratfit/solver"
)

// Baseline は目的変数の平均だけを予測する基準モデル。
// Fit時の行数分だけ平均値を並べたベクトルを保持し、
// Predict は入力Xの行数に関わらずそのベクトルを返す。
type Baseline struct {
	model.BaseEstimator

	solver      solver.Identity
	weights     *mat.VecDense
	predictions *mat.VecDense
	logger      log.Logger
}

// NewBaseline は新しい基準モデルを作成する
func NewBaseline(opts ...Option) *Baseline {
	cfg := newConfig(opts)
	logger := cfg.logger
	if logger == nil {
		logger = log.GetLoggerWithName("linear")
	}
	return &Baseline{
		BaseEstimator: model.NewBaseEstimator("Baseline"),
		logger:        logger.With(log.ModelNameKey, "Baseline"),
	}
}

// Fit はyの平均を計算する。Xは使わない。
func (m *Baseline) Fit(_ mat.Matrix, y mat.Vector) error {
	m.Reset()
	n := y.Len()
	if n == 0 {
		return errors.NewModelError("Baseline.Fit", "empty target", errors.ErrEmptyData)
	}

	mean := stat.Mean(matrix.VecToSlice(y), nil)
	w, err := m.solver.Optimize(mat.NewVecDense(1, []float64{mean}), nil, y)
	if err != nil {
		return err
	}

	m.weights = w
	m.predictions = matrix.Fill(n, w.AtVec(0))
	m.SetFitted()

	m.logger.Debug("fit completed", log.OperationKey, log.OperationFit, log.SamplesKey, n)
	return nil
}

// Predict は学習時に保存した平均値ベクトルのコピーを返す
func (m *Baseline) Predict(_ mat.Matrix) (*mat.VecDense, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.Name(), "Predict")
	}
	return matrix.CopyVec(m.predictions), nil
}

// Weights は [mean(y)] を返す
func (m *Baseline) Weights() *mat.VecDense {
	if m.weights == nil {
		return nil
	}
	return matrix.CopyVec(m.weights)
}

// GetParams はハイパーパラメータを返す
func (m *Baseline) GetParams() map[string]interface{} {
	return map[string]interface{}{"solver": m.solver.Name()}
}
