package util

import (
	"fmt"
	"io"

	"gridsense-server/models/series"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderSeriesChart renders the assembled series as an HTML line chart with
// demand, renewable supply, and net gap series.
func RenderSeriesChart(s *series.AssembledSeries, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "GridSense Forecast",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Demand vs Renewable Supply (%dh horizon)", s.HorizonHours),
			Subtitle: "source: " + string(s.Provenance),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	labels := make([]string, len(s.Samples))
	demand := make([]opts.LineData, len(s.Samples))
	supply := make([]opts.LineData, len(s.Samples))
	gap := make([]opts.LineData, len(s.Samples))
	for i, sample := range s.Samples {
		labels[i] = sample.TimeLabel
		demand[i] = opts.LineData{Value: sample.DemandMW}
		supply[i] = opts.LineData{Value: sample.SupplyMW}
		gap[i] = opts.LineData{Value: sample.GapMW}
	}

	line.SetXAxis(labels).
		AddSeries("Demand (MW)", demand).
		AddSeries("Renewable Supply (MW)", supply).
		AddSeries("Net Gap (MW)", gap)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line.Render(w)
}
