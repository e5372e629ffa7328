package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer はスコアを計算できるモデルのインターフェース。
// 回帰モデルはR²、分類モデルは正解率を返す。
type Scorer interface {
	Score(X mat.Matrix, y mat.Vector) (float64, error)
}

// WeightedModel は学習済みの重みを公開するモデル。
// 重みの0番目は切片。
type WeightedModel interface {
	Model
	Weights() *mat.VecDense
}

// Regressor は回帰モデルのインターフェース
type Regressor interface {
	WeightedModel
	Scorer
}

// Classifier は二値分類モデルのインターフェース
type Classifier interface {
	WeightedModel
	Scorer

	// PredictProba は陽性クラスの確率を返す
	PredictProba(X mat.Matrix) (*mat.VecDense, error)

	// PredictAt は指定した閾値で分類する
	PredictAt(X mat.Matrix, threshold float64) (*mat.VecDense, error)
}

// ParameterGetter はハイパーパラメータを公開するインターフェース
type ParameterGetter interface {
	GetParams() map[string]interface{}
}
