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

// LogisticRegression は二値ロジスティック回帰モデル。
// PredictProba は σ([1 | X]·w) を返し、Predict は閾値以上を1に分類する。
// 通常は solver.NewDerivative(loss.LogLikelihoodGrad) と組み合わせる。
type LogisticRegression[S solver.Solver] struct {
	linearBase[S]
}

// NewLogisticRegression は新しいロジスティック回帰モデルを作成する
func NewLogisticRegression[S solver.Solver](s S, opts ...Option) *LogisticRegression[S] {
	return &LogisticRegression[S]{
		linearBase: newLinearBase("LogisticRegression", s, opts),
	}
}

// Fit はモデルを訓練データで学習させる。yは0/1。
func (lr *LogisticRegression[S]) Fit(X mat.Matrix, y mat.Vector) (err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")

	if t := lr.cfg.threshold; t < 0 || t > 1 {
		lr.Reset()
		return errors.NewValidationError("threshold", "must be within [0, 1]", t)
	}
	return lr.fit(X, y)
}

// PredictProba は陽性クラスの確率を返す
func (lr *LogisticRegression[S]) PredictProba(X mat.Matrix) (proba *mat.VecDense, err error) {
	defer errors.Recover(&err, "LogisticRegression.PredictProba")

	aug, err := lr.augment(X, "PredictProba")
	if err != nil {
		return nil, err
	}
	return predict.Proba(aug, lr.weights), nil
}

// Predict は設定された閾値で分類する
func (lr *LogisticRegression[S]) Predict(X mat.Matrix) (*mat.VecDense, error) {
	return lr.PredictAt(X, lr.cfg.threshold)
}

// PredictAt は指定した閾値で分類する (p >= threshold を1とする)
func (lr *LogisticRegression[S]) PredictAt(X mat.Matrix, threshold float64) (*mat.VecDense, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}
	pred := predict.Classify(proba, threshold)

	lr.logger.Debug("predict completed",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, pred.Len(),
		log.ThresholdKey, threshold,
	)
	return pred, nil
}

// Threshold は Predict が使う閾値を返す
func (lr *LogisticRegression[S]) Threshold() float64 {
	return lr.cfg.threshold
}

// Score は設定された閾値での正解率を返す
func (lr *LogisticRegression[S]) Score(X mat.Matrix, y mat.Vector) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}

// GetParams はモデルとソルバーのハイパーパラメータを返す
func (lr *LogisticRegression[S]) GetParams() map[string]interface{} {
	params := lr.linearBase.GetParams()
	params["threshold"] = lr.cfg.threshold
	return params
}

var _ model.Classifier = (*LogisticRegression[solver.Derivative])(nil)
