// Package metrics は回帰・二値分類の評価指標、PR/ROC曲線とAUCを提供する。
//
// 全ての関数は長さが等しく空でないベクトルを要求し、
// 違反した場合は DimensionError または ValueError を返す。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	sse, err := SSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return sse / float64(yTrue.Len()), nil
}

// RMSE は平方根平均二乗誤差を計算する
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差を計算する
func MAE(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < yTrue.Len(); i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(yTrue.Len()), nil
}

// SSE は残差平方和 Σ(yTrue − yPred)² を計算する
func SSE(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("SSE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < yTrue.Len(); i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum, nil
}

// SST は全平方和 Σ(yTrue − mean(yTrue))² を計算する
func SST(yTrue mat.Vector) (float64, error) {
	if yTrue.Len() == 0 {
		return 0, errors.NewValueError("SST", "empty vector")
	}
	values := matrix.VecToSlice(yTrue)
	mean := stat.Mean(values, nil)

	var sum float64
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}
	return sum, nil
}

// R2 は決定係数 1 − SSE/SST を計算する。
// yTrueの分散が0の場合は ValueError を返す。
func R2(yTrue, yPred mat.Vector) (float64, error) {
	sse, err := SSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	sst, err := SST(yTrue)
	if err != nil {
		return 0, err
	}
	if sst == 0 {
		return 0, errors.NewValueError("R2", "total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - sse/sst, nil
}

func checkPair(op string, yTrue, yPred mat.Vector) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return nil
}
