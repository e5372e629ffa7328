package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix は二値分類の混同行列 [[TP, FP], [FN, TN]]
type ConfusionMatrix [2][2]int

func (c ConfusionMatrix) TP() int { return c[0][0] }
func (c ConfusionMatrix) FP() int { return c[0][1] }
func (c ConfusionMatrix) FN() int { return c[1][0] }
func (c ConfusionMatrix) TN() int { return c[1][1] }

// Total は全ての要素の和 (観測数) を返す
func (c ConfusionMatrix) Total() int {
	return c.TP() + c.FP() + c.FN() + c.TN()
}

// Precision は TP/(TP+FP)。TPとFPが共に0の場合は1を返す。
func (c ConfusionMatrix) Precision() float64 {
	return ratioOrOne(c.TP(), c.FP())
}

// Recall は TP/(TP+FN)。TPとFNが共に0の場合は1を返す。
func (c ConfusionMatrix) Recall() float64 {
	return ratioOrOne(c.TP(), c.FN())
}

// FPR は FP/(FP+TN)。FPとTNが共に0の場合は1を返す。
func (c ConfusionMatrix) FPR() float64 {
	return ratioOrOne(c.FP(), c.TN())
}

// F1 は 2·P·R/(P+R)。PとRが共に0の場合は0を返す。
func (c ConfusionMatrix) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Accuracy は (TP+TN)/全体
func (c ConfusionMatrix) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.TP()+c.TN()) / float64(total)
}

func (c ConfusionMatrix) String() string {
	return fmt.Sprintf("[[TP=%d FP=%d] [FN=%d TN=%d]]", c.TP(), c.FP(), c.FN(), c.TN())
}

// ratioOrOne は a/(a+b) を返す。a, b が共に0のときは1とする。
func ratioOrOne(a, b int) float64 {
	if a == 0 && b == 0 {
		return 1.0
	}
	return float64(a) / float64(a+b)
}

// isPositive は0以外のラベルを陽性として扱う
func isPositive(v float64) bool {
	return v != 0
}

// Confusion は yTrue と yPred (0/1) から混同行列を作る
func Confusion(yTrue, yPred mat.Vector) (ConfusionMatrix, error) {
	if err := checkPair("ConfusionMatrix", yTrue, yPred); err != nil {
		return ConfusionMatrix{}, err
	}
	return confusion(yTrue, yPred), nil
}

func confusion(yTrue, yPred mat.Vector) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := 0; i < yTrue.Len(); i++ {
		actual, predicted := isPositive(yTrue.AtVec(i)), isPositive(yPred.AtVec(i))
		switch {
		case actual && predicted:
			cm[0][0]++
		case !actual && predicted:
			cm[0][1]++
		case actual && !predicted:
			cm[1][0]++
		default:
			cm[1][1]++
		}
	}
	return cm
}

// TPCount は真陽性の数を返す
func TPCount(yTrue, yPred mat.Vector) (int, error) {
	cm, err := Confusion(yTrue, yPred)
	return cm.TP(), err
}

// FPCount は偽陽性の数を返す
func FPCount(yTrue, yPred mat.Vector) (int, error) {
	cm, err := Confusion(yTrue, yPred)
	return cm.FP(), err
}

// TNCount は真陰性の数を返す
func TNCount(yTrue, yPred mat.Vector) (int, error) {
	cm, err := Confusion(yTrue, yPred)
	return cm.TN(), err
}

// FNCount は偽陰性の数を返す
func FNCount(yTrue, yPred mat.Vector) (int, error) {
	cm, err := Confusion(yTrue, yPred)
	return cm.FN(), err
}

// Precision は適合率を計算する
func Precision(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return cm.Precision(), nil
}

// Recall は再現率を計算する
func Recall(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return cm.Recall(), nil
}

// FPR は偽陽性率を計算する
func FPR(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return cm.FPR(), nil
}

// F1 はF1スコアを計算する
func F1(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return cm.F1(), nil
}

// Accuracy は yTrue と yPred が一致する割合を計算する
func Accuracy(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("Accuracy", yTrue, yPred); err != nil {
		return 0, err
	}
	var hits int
	for i := 0; i < yTrue.Len(); i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			hits++
		}
	}
	return float64(hits) / float64(yTrue.Len()), nil
}
