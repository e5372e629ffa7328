// Package predict は重みと切片付き特徴量行列から予測値を計算する関数群。
// 閉形式の重み推定 (OLS, QR) もここに置く。
//
// 全ての関数は切片列を含む行列 [1 | X] を受け取る。
package predict

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// Linear は ŷ = X·w を返す
func Linear(X mat.Matrix, w mat.Vector) *mat.VecDense {
	r, _ := X.Dims()
	out := mat.NewVecDense(r, nil)
	out.MulVec(X, w)
	return out
}

// Sigmoid は 1/(1+e^(-z)) を返す
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// Logistic はベクトルの各要素にシグモイド関数を適用した新しいベクトルを返す
func Logistic(z mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		out.SetVec(i, Sigmoid(z.AtVec(i)))
	}
	return out
}

// Proba は陽性クラスの確率 σ(X·w) を返す
func Proba(X mat.Matrix, w mat.Vector) *mat.VecDense {
	return Logistic(Linear(X, w))
}

// Classify は p >= threshold の要素を1、それ以外を0にする
func Classify(p mat.Vector, threshold float64) *mat.VecDense {
	out := mat.NewVecDense(p.Len(), nil)
	for i := 0; i < p.Len(); i++ {
		if p.AtVec(i) >= threshold {
			out.SetVec(i, 1)
		}
	}
	return out
}

// OLS は正規方程式 w = (XᵀX)⁻¹Xᵀy を解く。
// XᵀXが逆行列を持たない場合は ErrSingularMatrix でマークした ModelError を返す。
func OLS(X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("OLS", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError("OLS", r, y.Len(), 0)
	}

	var XTX mat.Dense
	XTX.Mul(X.T(), X)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return nil, errors.NewModelError("OLS", "singular normal matrix", errors.Mark(err, errors.ErrSingularMatrix))
	}

	var XTy mat.VecDense
	XTy.MulVec(X.T(), y)

	w := mat.NewVecDense(c, nil)
	w.MulVec(&XTXInv, &XTy)
	return w, nil
}

// QR は経済型QR分解 X = QR を使って w = R⁻¹(Qᵀy) を解く。
// 行数が列数より少ない場合は ValueError を返す。
func QR(X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("QR", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError("QR", r, y.Len(), 0)
	}
	if r < c {
		return nil, errors.NewValueError("QR", "more columns than rows, the system is underdetermined")
	}

	var qr mat.QR
	qr.Factorize(X)

	var q, rFull mat.Dense
	qr.QTo(&q)
	qr.RTo(&rFull)

	// 経済型: Qの先頭c列とRの上側c×cのみを使う
	qEcon := q.Slice(0, r, 0, c)
	rEcon := rFull.Slice(0, c, 0, c)

	var rInv mat.Dense
	if err := rInv.Inverse(rEcon); err != nil {
		return nil, errors.NewModelError("QR", "singular R factor", errors.Mark(err, errors.ErrSingularMatrix))
	}

	var qty mat.VecDense
	qty.MulVec(qEcon.T(), y)

	w := mat.NewVecDense(c, nil)
	w.MulVec(&rInv, &qty)
	return w, nil
}
