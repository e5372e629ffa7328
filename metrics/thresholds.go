package metrics

import (
	"math"

	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// BalancedThreshold は適合率と再現率の差が最小になる閾値を返す
func BalancedThreshold(c PRCurve) (float64, error) {
	n := len(c.Thresholds)
	if n == 0 {
		return 0, errors.NewValueError("BalancedThreshold", "empty curve")
	}
	if len(c.Precisions) != n || len(c.Recalls) != n {
		return 0, errors.NewDimensionError("BalancedThreshold", n, len(c.Precisions), 0)
	}

	best, bestDiff := 0, math.Inf(1)
	for i := 0; i < n; i++ {
		if d := math.Abs(c.Precisions[i] - c.Recalls[i]); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return c.Thresholds[best], nil
}

// MaxGainThreshold は TP − FP が最大になる閾値を返す。
// tp と fp は TPCurve / FPCurve と同じ閾値で作られている必要がある。
func MaxGainThreshold(thresholds []float64, tp, fp []int) (float64, error) {
	n := len(thresholds)
	if n == 0 {
		return 0, errors.NewValueError("MaxGainThreshold", "empty curve")
	}
	if len(tp) != n {
		return 0, errors.NewDimensionError("MaxGainThreshold", n, len(tp), 0)
	}
	if len(fp) != n {
		return 0, errors.NewDimensionError("MaxGainThreshold", n, len(fp), 0)
	}

	best := 0
	for i := 1; i < n; i++ {
		if tp[i]-fp[i] > tp[best]-fp[best] {
			best = i
		}
	}
	return thresholds[best], nil
}
