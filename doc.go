// Package stratfit is a small modeling toolkit for Go whose estimators are
// generic over an optimization strategy.
//
// A model holds its solver by value and delegates the weight search to it, so
// the same LinearRegression can be fitted in closed form or iteratively:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/stratfit/linear"
//	    "github.com/YuminosukeSato/stratfit/loss"
//	    "github.com/YuminosukeSato/stratfit/solver"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewVecDense(4, []float64{2, 4, 6, 8})
//
//	    ols := linear.NewLinearRegression(solver.QR{})
//	    if err := ols.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    grad, _ := solver.NewDerivative(loss.MSEGrad, solver.WithLearningRate(0.05))
//	    gd := linear.NewLinearRegression(grad)
//	    if err := gd.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(ols.Weights(), gd.Weights())
//	}
//
// Fit never modifies X: the intercept column is added to a new matrix.
//
// # Packages
//
//   - solver: Identity, OLS, QR and the iterative Derivative solver
//   - loss: gradient, Laplacian and Newton derivatives of MSE and log-likelihood
//   - predict: linear, logistic and closed-form prediction functions
//   - linear: Baseline, LinearRegression, LogisticRegression
//   - autoreg: lag extractor and AR(p) model with simulated forecasts
//   - preprocessing: IdentityTransformer, StandardScaler
//   - metrics: regression and classification metrics, PR/ROC curves, AUC, reports
//   - plotting: PNG/SVG curve and forecast plots, HTML charts
//   - core/model: estimator interfaces and fitted state
//   - core/matrix, core/parallel: matrix helpers
//   - pkg/errors, pkg/log: error taxonomy, warnings and structured logging
//
// # Errors
//
// Every failure is returned as an error built on cockroachdb/errors; print
// it with "%+v" for a stack trace. Non-fatal conditions such as a solver that
// ran out of iterations are reported as warnings through pkg/log.
package stratfit
