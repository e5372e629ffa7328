package metrics

import (
	"io"
	"math"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/predict"
)

// RegressionReport は回帰モデルの評価指標をまとめたもの
type RegressionReport struct {
	Samples int     `json:"samples"`
	MSE     float64 `json:"mse"`
	RMSE    float64 `json:"rmse"`
	MAE     float64 `json:"mae"`
	R2      float64 `json:"r2"`
}

// NewRegressionReport は全ての回帰指標を計算する
func NewRegressionReport(yTrue, yPred mat.Vector) (*RegressionReport, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return nil, err
	}
	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return nil, err
	}
	r2, err := R2(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	return &RegressionReport{
		Samples: yTrue.Len(),
		MSE:     mse,
		RMSE:    math.Sqrt(mse),
		MAE:     mae,
		R2:      r2,
	}, nil
}

// ClassificationReport は確率出力の二値分類モデルの評価をまとめたもの
type ClassificationReport struct {
	Threshold         float64         `json:"threshold"`
	ConfusionMatrix   ConfusionMatrix `json:"confusion_matrix"`
	Accuracy          float64         `json:"accuracy"`
	Precision         float64         `json:"precision"`
	Recall            float64         `json:"recall"`
	FPR               float64         `json:"fpr"`
	F1                float64         `json:"f1"`
	PRAUC             float64         `json:"pr_auc"`
	ROCAUC            float64         `json:"roc_auc"`
	BalancedThreshold float64         `json:"balanced_threshold"`
	MaxGainThreshold  float64         `json:"max_gain_threshold"`
	PR                PRCurve         `json:"pr_curve"`
	ROC               ROCCurve        `json:"roc_curve"`
}

// NewClassificationReport は threshold での分類指標と、num 個の閾値で作った曲線の指標を計算する
func NewClassificationReport(yTrue, yProba mat.Vector, threshold float64, num int) (*ClassificationReport, error) {
	pr, err := PRCurveOf(yTrue, yProba, num)
	if err != nil {
		return nil, err
	}
	roc, err := ROCCurveOf(yTrue, yProba, num)
	if err != nil {
		return nil, err
	}
	prAUC, err := AUC(pr)
	if err != nil {
		return nil, err
	}
	rocAUC, err := AUC(roc)
	if err != nil {
		return nil, err
	}
	balanced, err := BalancedThreshold(pr)
	if err != nil {
		return nil, err
	}
	tp, err := TPCurve(yTrue, yProba, num)
	if err != nil {
		return nil, err
	}
	fp, err := FPCurve(yTrue, yProba, num)
	if err != nil {
		return nil, err
	}
	maxGain, err := MaxGainThreshold(pr.Thresholds, tp, fp)
	if err != nil {
		return nil, err
	}

	yPred := predict.Classify(yProba, threshold)
	cm := confusion(yTrue, yPred)
	accuracy, err := Accuracy(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	return &ClassificationReport{
		Threshold:         threshold,
		ConfusionMatrix:   cm,
		Accuracy:          accuracy,
		Precision:         cm.Precision(),
		Recall:            cm.Recall(),
		FPR:               cm.FPR(),
		F1:                cm.F1(),
		PRAUC:             prAUC,
		ROCAUC:            rocAUC,
		BalancedThreshold: balanced,
		MaxGainThreshold:  maxGain,
		PR:                pr,
		ROC:               roc,
	}, nil
}

// WriteJSON はレポートをインデント付きJSONで書き出す
func WriteJSON(w io.Writer, report any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
