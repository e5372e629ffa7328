package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース。
// Xは切片列を含まない生の特徴量で、呼び出し側のXは変更されない。
type Fitter interface {
	Fit(X mat.Matrix, y mat.Vector) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は未学習の場合 NotFittedError を返す
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Model は教師あり学習モデルの基本インターフェース
type Model interface {
	Fitter
	Predictor
	IsFitted() bool
	Name() string
}

// FitPredict はFitに成功した場合のみ同じXでPredictを行う。
// メソッドチェーンの代わりに使う。
func FitPredict(m Model, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if err := m.Fit(X, y); err != nil {
		return nil, err
	}
	return m.Predict(X)
}
