package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/metrics"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
	"github.com/YuminosukeSato/stratfit/predict"
	"github.com/YuminosukeSato/stratfit/solver"
)

// LinearRegression は線形回帰モデル ŷ = [1 | X]·w。
// 重みの推定方法は型パラメータのソルバーで決まる。
//
//	lr := linear.NewLinearRegression(solver.QR{})
//	err := lr.Fit(X, y)
type LinearRegression[S solver.Solver] struct {
	linearBase[S]
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression[S solver.Solver](s S, opts ...Option) *LinearRegression[S] {
	return &LinearRegression[S]{
		linearBase: newLinearBase("LinearRegression", s, opts),
	}
}

// Fit はモデルを訓練データで学習させる。呼び出し側のXは変更しない。
func (lr *LinearRegression[S]) Fit(X mat.Matrix, y mat.Vector) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")
	return lr.fit(X, y)
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression[S]) Predict(X mat.Matrix) (pred *mat.VecDense, err error) {
	defer errors.Recover(&err, "LinearRegression.Predict")

	aug, err := lr.augment(X, "Predict")
	if err != nil {
		return nil, err
	}
	pred = predict.Linear(aug, lr.weights)

	lr.logger.Debug("predict completed", log.OperationKey, log.OperationPredict, log.PredsKey, pred.Len())
	return pred, nil
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression[S]) Score(X mat.Matrix, y mat.Vector) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2(y, pred)
}

var _ model.Regressor = (*LinearRegression[solver.OLS])(nil)
