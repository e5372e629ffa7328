// Package loss は反復ソルバーが使う損失関数の導関数を提供する。
//
// 全ての関数は切片列を含む行列 [1 | X] を受け取り、重みと同じ長さのベクトルを返す。
// Newton系の関数は特徴量が1つ (切片列を含めて2列) の場合のみ有効。
package loss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/predict"
)

// DerivativeFunc は重み w における導関数ベクトルを計算する
type DerivativeFunc func(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error)

// maxNewtonColumns は切片列と特徴量1つ
const maxNewtonColumns = 2

// MSEGrad は平均二乗誤差の勾配 -2/n · Xᵀ(y − Xw) を返す
func MSEGrad(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if err := checkShapes("MSEGrad", w, X, y); err != nil {
		return nil, err
	}
	return scaledResidualProjection(X, y, predict.Linear(X, w), -2.0), nil
}

// MSELaplacian は平均二乗誤差の二階導関数の近似 2/n · diag(XᵀX) を返す。
// 各要素は対応する列の二乗和。
func MSELaplacian(X mat.Matrix) *mat.VecDense {
	r, c := X.Dims()
	out := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		var ss float64
		for i := 0; i < r; i++ {
			v := X.At(i, j)
			ss += v * v
		}
		out.SetVec(j, 2.0*ss/float64(r))
	}
	return out
}

// MSENewton は勾配をラプラシアンで要素ごとに割ったNewtonステップを返す。
// Xが2列より多い場合は NewtonShapeError を返す。
func MSENewton(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if _, c := X.Dims(); c > maxNewtonColumns {
		return nil, errors.NewNewtonShapeError(c)
	}
	grad, err := MSEGrad(w, X, y)
	if err != nil {
		return nil, err
	}
	grad.DivElemVec(grad, MSELaplacian(X))
	return grad, nil
}

// LogLikelihoodGrad は対数尤度損失の勾配 -1/n · Xᵀ(y − p̂) を返す
func LogLikelihoodGrad(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if err := checkShapes("LogLikelihoodGrad", w, X, y); err != nil {
		return nil, err
	}
	return scaledResidualProjection(X, y, predict.Proba(X, w), -1.0), nil
}

// LogLikelihoodLaplacian は対数尤度損失の二階導関数の近似 1/n · Xᵀ[p̂(1−p̂)] を返す
func LogLikelihoodLaplacian(w *mat.VecDense, X mat.Matrix) *mat.VecDense {
	r, c := X.Dims()
	p := predict.Proba(X, w)

	weights := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		pi := p.AtVec(i)
		weights.SetVec(i, pi*(1-pi))
	}

	out := mat.NewVecDense(c, nil)
	out.MulVec(X.T(), weights)
	out.ScaleVec(1.0/float64(r), out)
	return out
}

// LogLikelihoodNewton は勾配をラプラシアンで要素ごとに割ったNewtonステップを返す。
// Xが2列より多い場合は NewtonShapeError を返す。
func LogLikelihoodNewton(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	if _, c := X.Dims(); c > maxNewtonColumns {
		return nil, errors.NewNewtonShapeError(c)
	}
	grad, err := LogLikelihoodGrad(w, X, y)
	if err != nil {
		return nil, err
	}
	grad.DivElemVec(grad, LogLikelihoodLaplacian(w, X))
	return grad, nil
}

// scaledResidualProjection は scale/n · Xᵀ(y − pred) を計算する
func scaledResidualProjection(X mat.Matrix, y mat.Vector, pred *mat.VecDense, scale float64) *mat.VecDense {
	r, c := X.Dims()
	residual := mat.NewVecDense(r, nil)
	residual.SubVec(y, pred)

	out := mat.NewVecDense(c, nil)
	out.MulVec(X.T(), residual)
	out.ScaleVec(scale/float64(r), out)
	return out
}

func checkShapes(op string, w mat.Vector, X mat.Matrix, y mat.Vector) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if w.Len() != c {
		return errors.NewDimensionError(op, c, w.Len(), 1)
	}
	if y.Len() != r {
		return errors.NewDimensionError(op, r, y.Len(), 0)
	}
	return nil
}
