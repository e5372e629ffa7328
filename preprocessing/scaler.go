// Package preprocessing は特徴量の変換器を提供する。
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// IdentityTransformer は入力をそのまま返す変換器
type IdentityTransformer struct {
	model.BaseEstimator
}

// NewIdentityTransformer は新しいIdentityTransformerを作成する
func NewIdentityTransformer() *IdentityTransformer {
	return &IdentityTransformer{BaseEstimator: model.NewBaseEstimator("IdentityTransformer")}
}

// Fit は学習済みにするだけで何も計算しない
func (t *IdentityTransformer) Fit(_ mat.Matrix) error {
	t.SetFitted()
	return nil
}

// Transform はXのコピーを返す
func (t *IdentityTransformer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !t.IsFitted() {
		return nil, errors.NewNotFittedError(t.Name(), "Transform")
	}
	return mat.DenseCopyOf(X), nil
}

// FitTransform はFitとTransformを続けて実行する
func (t *IdentityTransformer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := t.Fit(X); err != nil {
		return nil, err
	}
	return t.Transform(X)
}

// InverseTransform はXのコピーを返す
func (t *IdentityTransformer) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !t.IsFitted() {
		return nil, errors.NewNotFittedError(t.Name(), "InverseTransform")
	}
	return mat.DenseCopyOf(X), nil
}

// StandardScaler はデータを列ごとに平均0、標準偏差1に変換する。
// 標準偏差は不偏推定 (N−1で割る)。
//
// 分散0の列はゼロ除算になり、変換結果にNaNやInfが含まれる。
// その場合は NumericalWarning が通知される。
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler()
//	XScaled, err := scaler.FitTransform(X)
type StandardScaler struct {
	model.BaseEstimator

	means []float64
	stds  []float64
}

// NewStandardScaler は新しいStandardScalerを作成する
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{BaseEstimator: model.NewBaseEstimator("StandardScaler")}
}

// Fit は各列の平均と標準偏差を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	s.Reset()
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.means, s.stds = matrix.ColumnMeanStdDev(X)
	s.SetFitted()
	return nil
}

// Transform は (X − mean) / std を返す
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.check(X, "Transform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return (v - s.means[j]) / s.stds[j]
	}, X)

	if warn := errors.CheckFinite("StandardScaler.Transform", result.RawMatrix().Data, -1); warn != nil {
		errors.Warn(warn)
	}
	return result, nil
}

// FitTransform はFitの後に同じデータをTransformする
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.check(X, "InverseTransform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return v*s.stds[j] + s.means[j]
	}, X)
	return result, nil
}

func (s *StandardScaler) check(X mat.Matrix, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(s.Name(), method)
	}
	if _, c := X.Dims(); c != len(s.means) {
		return errors.NewDimensionError("StandardScaler."+method, len(s.means), c, 1)
	}
	return nil
}

// Means は学習した列平均のコピーを返す
func (s *StandardScaler) Means() []float64 {
	return append([]float64(nil), s.means...)
}

// StdDevs は学習した列標準偏差のコピーを返す
func (s *StandardScaler) StdDevs() []float64 {
	return append([]float64(nil), s.stds...)
}

// GetParams はパラメータを返す
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{"ddof": 1}
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler()"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", len(s.means))
}

var (
	_ model.InverseTransformer = (*IdentityTransformer)(nil)
	_ model.InverseTransformer = (*StandardScaler)(nil)
)
