package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderPlot writes an HTML line chart of the sampled expectation curve.
func renderPlot(path, observable string, ts, values []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Trotterized Heisenberg evolution",
			Subtitle: fmt.Sprintf("observable %s", observable),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Re <A(t)>"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	xs := make([]string, len(ts))
	data := make([]opts.LineData, len(values))
	for i := range ts {
		xs[i] = fmt.Sprintf("%.4g", ts[i])
		data[i] = opts.LineData{Value: values[i]}
	}
	line.SetXAxis(xs).AddSeries(observable, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
