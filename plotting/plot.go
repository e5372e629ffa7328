// Package plotting renders evaluation curves and forecasts, either as static
// images through gonum/plot or as interactive HTML pages through go-echarts.
package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/stratfit/metrics"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

// Default image size.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

var (
	historyColor  = color.RGBA{B: 200, A: 255}
	forecastColor = color.RGBA{R: 220, A: 255}
)

// axes returns the x and y labels of a curve.
func axes(c metrics.Curve) (x, y string) {
	switch c.(type) {
	case metrics.PRCurve, *metrics.PRCurve:
		return "Recall", "Precision"
	case metrics.ROCCurve, *metrics.ROCCurve:
		return "False positive rate", "True positive rate"
	}
	return "x", "y"
}

func curvePoints(c metrics.Curve) (plotter.XYs, error) {
	ys, xs := c.Sequences()
	if len(xs) != len(ys) {
		return nil, errors.NewDimensionError("plotting.curvePoints", len(ys), len(xs), 0)
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

// NewCurvePlot builds a plot of a PR or ROC curve with its AUC in the legend.
func NewCurvePlot(title string, c metrics.Curve) (*plot.Plot, error) {
	pts, err := curvePoints(c)
	if err != nil {
		return nil, err
	}
	auc, err := metrics.AUC(c)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text, p.Y.Label.Text = axes(c)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "plotting: curve line")
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = historyColor
	p.Add(line)
	p.Legend.Add(formatAUC(auc), line)
	p.Legend.Top = true
	return p, nil
}

// NewForecastPlot builds a plot of a series followed by its forecast.
func NewForecastPlot(title string, history, forecast []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.NewModelError("plotting.NewForecastPlot", "empty history", errors.ErrEmptyData)
	}

	hist := make(plotter.XYs, len(history))
	for i, v := range history {
		hist[i] = plotter.XY{X: float64(i), Y: v}
	}
	// the forecast line starts at the last observed point
	fc := make(plotter.XYs, len(forecast)+1)
	fc[0] = hist[len(hist)-1]
	for i, v := range forecast {
		fc[i+1] = plotter.XY{X: float64(len(history) + i), Y: v}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	h, err := plotter.NewLine(hist)
	if err != nil {
		return nil, errors.Wrap(err, "plotting: history line")
	}
	h.LineStyle.Width = vg.Points(2)
	h.LineStyle.Color = historyColor

	fl, fp, err := plotter.NewLinePoints(fc)
	if err != nil {
		return nil, errors.Wrap(err, "plotting: forecast line")
	}
	fl.LineStyle.Width = vg.Points(2)
	fl.LineStyle.Color = forecastColor
	fl.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	fp.GlyphStyle.Color = forecastColor

	p.Add(h, fl, fp)
	p.Legend.Add("history", h)
	p.Legend.Add("forecast", fl, fp)
	p.Legend.Top = true
	return p, nil
}

// Save writes p to path; the format is taken from the extension
// (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "plotting: save %s", path)
	}
	return nil
}

// SaveCurve renders a curve to path.
func SaveCurve(title string, c metrics.Curve, path string) error {
	p, err := NewCurvePlot(title, c)
	if err != nil {
		return err
	}
	return Save(p, path)
}

// SaveForecast renders a series and its forecast to path.
func SaveForecast(title string, history, forecast []float64, path string) error {
	p, err := NewForecastPlot(title, history, forecast)
	if err != nil {
		return err
	}
	return Save(p, path)
}
