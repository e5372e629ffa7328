package metrics

import (
	"slices"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/predict"
)

// DefaultNumThresholds は曲線を作るときの閾値の数
const DefaultNumThresholds = 101

// Curve は閾値ごとの2つの系列を持つ曲線。AUCは first を second で積分する。
type Curve interface {
	Sequences() (first, second []float64)
}

// PRCurve は閾値ごとの適合率と再現率
type PRCurve struct {
	Thresholds []float64 `json:"thresholds"`
	Precisions []float64 `json:"precisions"`
	Recalls    []float64 `json:"recalls"`
}

func (c PRCurve) Sequences() (first, second []float64) {
	return c.Precisions, c.Recalls
}

// ROCCurve は閾値ごとの再現率 (TPR) と偽陽性率 (FPR)
type ROCCurve struct {
	Thresholds []float64 `json:"thresholds"`
	Recalls    []float64 `json:"recalls"`
	Fallouts   []float64 `json:"fallouts"`
}

func (c ROCCurve) Sequences() (first, second []float64) {
	return c.Recalls, c.Fallouts
}

// Thresholds は [0, 1] を num 点で等分した閾値を返す
func Thresholds(num int) []float64 {
	return matrix.Linspace(0, 1, num)
}

// sweep は各閾値での混同行列を返す。
// p >= t を陽性とするが、最後の閾値 (t = 1) だけは p > t とし、
// 曲線が必ず「陽性なし」の分類器で終わるようにする。
// 違いが出るのはシグモイドが飽和して確率がちょうど1.0になった場合だけで、
// そのサンプルは最後の閾値では陰性に数えられる。
func sweep(op string, yTrue, yProba mat.Vector, num int) ([]float64, []ConfusionMatrix, error) {
	if err := checkPair(op, yTrue, yProba); err != nil {
		return nil, nil, err
	}
	if num < 2 {
		return nil, nil, errors.NewValidationError("num", "at least two thresholds are required", num)
	}

	thresholds := Thresholds(num)
	cms := make([]ConfusionMatrix, num)
	for i, t := range thresholds {
		var yPred *mat.VecDense
		if i == num-1 {
			yPred = classifyAbove(yProba, t)
		} else {
			yPred = predict.Classify(yProba, t)
		}
		cms[i] = confusion(yTrue, yPred)
	}
	return thresholds, cms, nil
}

func classifyAbove(p mat.Vector, threshold float64) *mat.VecDense {
	out := mat.NewVecDense(p.Len(), nil)
	for i := 0; i < p.Len(); i++ {
		if p.AtVec(i) > threshold {
			out.SetVec(i, 1)
		}
	}
	return out
}

// PRCurveOf は num 個の閾値で適合率・再現率曲線を作る
func PRCurveOf(yTrue, yProba mat.Vector, num int) (PRCurve, error) {
	thresholds, cms, err := sweep("PRCurve", yTrue, yProba, num)
	if err != nil {
		return PRCurve{}, err
	}
	c := PRCurve{
		Thresholds: thresholds,
		Precisions: make([]float64, num),
		Recalls:    make([]float64, num),
	}
	for i, cm := range cms {
		c.Precisions[i] = cm.Precision()
		c.Recalls[i] = cm.Recall()
	}
	return c, nil
}

// ROCCurveOf は num 個の閾値でROC曲線を作る
func ROCCurveOf(yTrue, yProba mat.Vector, num int) (ROCCurve, error) {
	thresholds, cms, err := sweep("ROCCurve", yTrue, yProba, num)
	if err != nil {
		return ROCCurve{}, err
	}
	c := ROCCurve{
		Thresholds: thresholds,
		Recalls:    make([]float64, num),
		Fallouts:   make([]float64, num),
	}
	for i, cm := range cms {
		c.Recalls[i] = cm.Recall()
		c.Fallouts[i] = cm.FPR()
	}
	return c, nil
}

func countCurve(op string, yTrue, yProba mat.Vector, num int, count func(ConfusionMatrix) int) ([]int, error) {
	_, cms, err := sweep(op, yTrue, yProba, num)
	if err != nil {
		return nil, err
	}
	out := make([]int, num)
	for i, cm := range cms {
		out[i] = count(cm)
	}
	return out, nil
}

// TPCurve は閾値ごとの真陽性数を返す
func TPCurve(yTrue, yProba mat.Vector, num int) ([]int, error) {
	return countCurve("TPCurve", yTrue, yProba, num, ConfusionMatrix.TP)
}

// FPCurve は閾値ごとの偽陽性数を返す
func FPCurve(yTrue, yProba mat.Vector, num int) ([]int, error) {
	return countCurve("FPCurve", yTrue, yProba, num, ConfusionMatrix.FP)
}

// TNCurve は閾値ごとの真陰性数を返す
func TNCurve(yTrue, yProba mat.Vector, num int) ([]int, error) {
	return countCurve("TNCurve", yTrue, yProba, num, ConfusionMatrix.TN)
}

// FNCurve は閾値ごとの偽陰性数を返す
func FNCurve(yTrue, yProba mat.Vector, num int) ([]int, error) {
	return countCurve("FNCurve", yTrue, yProba, num, ConfusionMatrix.FN)
}

// AUC は曲線の first を second に対して台形則で積分する。
// 曲線は閾値の昇順に作られるので、両方の系列を反転してから積分する。
// 点が2つ未満の場合は0を返す。
func AUC(c Curve) (auc float64, err error) {
	defer errors.Recover(&err, "AUC")

	first, second := c.Sequences()
	if len(first) != len(second) {
		return 0, errors.NewDimensionError("AUC", len(first), len(second), 0)
	}
	if len(first) < 2 {
		return 0, nil
	}

	f := slices.Clone(first)
	x := slices.Clone(second)
	slices.Reverse(f)
	slices.Reverse(x)
	return integrate.Trapezoidal(x, f), nil
}
