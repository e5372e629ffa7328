// Package solver implements the weight optimization strategies held by
// stratfit models.
//
// A model stores its solver by value as a type parameter, so a solver must be
// a small immutable value. Every Optimize call receives the intercept
// augmented design matrix [1 | X] and the initial weights, and returns a new
// weight vector without modifying its inputs.
package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/predict"
)

// Solver computes weights for an augmented design matrix.
type Solver interface {
	Optimize(w *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error)
	Name() string
}

// Identity returns the initial weights unchanged.
type Identity struct{}

// Optimize returns a copy of w.
func (Identity) Optimize(w *mat.VecDense, _ mat.Matrix, _ mat.Vector) (*mat.VecDense, error) {
	return matrix.CopyVec(w), nil
}

func (Identity) Name() string { return "Identity" }

// OLS solves the normal equation (XᵀX)⁻¹Xᵀy. The initial weights are ignored.
type OLS struct{}

// Optimize returns a *errors.ModelError marked with errors.ErrSingularMatrix
// when XᵀX cannot be inverted.
func (OLS) Optimize(_ *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	return predict.OLS(X, y)
}

func (OLS) Name() string { return "OLS" }

// QR solves least squares through an economical QR decomposition. The
// initial weights are ignored.
type QR struct{}

func (QR) Optimize(_ *mat.VecDense, X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	return predict.QR(X, y)
}

func (QR) Name() string { return "QR" }

var (
	_ Solver = Identity{}
	_ Solver = OLS{}
	_ Solver = QR{}
	_ Solver = Derivative{}
)
