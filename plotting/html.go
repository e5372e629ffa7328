package plotting

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/YuminosukeSato/stratfit/metrics"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
)

func formatAUC(auc float64) string {
	return fmt.Sprintf("AUC = %.4f", auc)
}

// CurveChart generates an echart line chart of a PR or ROC curve. The x axis
// is the curve's domain sequence, the AUC is shown as the subtitle.
func CurveChart(title string, c metrics.Curve) (*charts.Line, error) {
	pts, err := curvePoints(c)
	if err != nil {
		return nil, err
	}
	auc, err := metrics.AUC(c)
	if err != nil {
		return nil, err
	}
	xName, yName := axes(c)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: formatAUC(auc)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value", Min: 0, Max: 1}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Min: 0, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	data := make([]opts.LineData, 0, len(pts))
	for _, pt := range pts {
		data = append(data, opts.LineData{Value: []float64{pt.X, pt.Y}})
	}
	line.AddSeries(yName, data)
	return line, nil
}

// ForecastChart generates an echart line chart with the history and the
// forecast as two series over a shared period axis.
func ForecastChart(title string, history, forecast []float64) *charts.Line {
	n := len(history) + len(forecast)
	periods := make([]int, n)
	for i := range periods {
		periods[i] = i
	}

	hist := make([]opts.LineData, n)
	fc := make([]opts.LineData, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(history):
			hist[i] = opts.LineData{Value: history[i]}
			if i == len(history)-1 {
				fc[i] = opts.LineData{Value: history[i]}
			}
		default:
			fc[i] = opts.LineData{Value: forecast[i-len(history)]}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(periods).
		AddSeries("History", hist).
		AddSeries("Forecast", fc)
	return line
}

// RenderPage writes all charts to w as a single HTML page.
func RenderPage(w io.Writer, lines ...*charts.Line) error {
	page := components.NewPage()
	for _, l := range lines {
		page.AddCharts(l)
	}
	return page.Render(w)
}

// WriteHTML renders the charts into a file at path.
func WriteHTML(path string, lines ...*charts.Line) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "plotting: create %s", path)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return RenderPage(file, lines...)
}
