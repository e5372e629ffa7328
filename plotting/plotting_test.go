package plotting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/stratfit/metrics"
)

func curves(t *testing.T) (metrics.PRCurve, metrics.ROCCurve) {
	t.Helper()
	y := mat.NewVecDense(6, []float64{0, 0, 1, 0, 1, 1})
	p := mat.NewVecDense(6, []float64{0.1, 0.3, 0.35, 0.6, 0.8, 0.9})

	pr, err := metrics.PRCurveOf(y, p, 21)
	require.NoError(t, err)
	roc, err := metrics.ROCCurveOf(y, p, 21)
	require.NoError(t, err)
	return pr, roc
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveCurve(t *testing.T) {
	pr, roc := curves(t)
	dir := t.TempDir()

	prPath := filepath.Join(dir, "pr.png")
	require.NoError(t, SaveCurve("PR", pr, prPath))
	assertNonEmptyFile(t, prPath)

	rocPath := filepath.Join(dir, "roc.svg")
	require.NoError(t, SaveCurve("ROC", roc, rocPath))
	assertNonEmptyFile(t, rocPath)

	svg, err := os.ReadFile(rocPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestNewCurvePlotLabels(t *testing.T) {
	pr, roc := curves(t)

	p, err := NewCurvePlot("PR", pr)
	require.NoError(t, err)
	assert.Equal(t, "Recall", p.X.Label.Text)
	assert.Equal(t, "Precision", p.Y.Label.Text)

	p, err = NewCurvePlot("ROC", roc)
	require.NoError(t, err)
	assert.Equal(t, "False positive rate", p.X.Label.Text)
}

func TestNewCurvePlotMismatchedSequences(t *testing.T) {
	_, err := NewCurvePlot("bad", metrics.PRCurve{Precisions: []float64{1, 0.5}, Recalls: []float64{0}})
	assert.Error(t, err)
}

func TestSaveForecast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast.png")
	err := SaveForecast("AR(1)", []float64{0, 10, 11, 15, 20}, []float64{24, 27, 31}, path)
	require.NoError(t, err)
	assertNonEmptyFile(t, path)

	_, err = NewForecastPlot("empty", nil, []float64{1})
	assert.Error(t, err)
}

func TestHTMLCharts(t *testing.T) {
	pr, roc := curves(t)

	prChart, err := CurveChart("Precision-Recall", pr)
	require.NoError(t, err)
	rocChart, err := CurveChart("ROC", roc)
	require.NoError(t, err)
	fc := ForecastChart("Forecast", []float64{1, 2, 3}, []float64{4, 5})

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, prChart, rocChart, fc))
	html := buf.String()
	assert.Contains(t, html, "Precision-Recall")
	assert.Contains(t, html, "AUC = ")
	assert.Contains(t, html, "Forecast")

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(path, fc))
	assertNonEmptyFile(t, path)
}
