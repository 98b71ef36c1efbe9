package dashboard

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
)

const (
	chartWidth  = "719px"
	chartHeight = "243px"
	dateLayout  = "2006-01-02"
)

// trafficChart builds a dual-axis line chart for a views/clones series:
// count on the left axis, uniques on the right, tooltips triggered per day.
// The chart ID is fixed so re-rendering the same series yields identical
// markup.
func trafficChart(id, title string, series []models.StatRecord) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   chartWidth,
			Height:  chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "Uniques", Type: "value"})

	dates := make([]string, 0, len(series))
	counts := make([]opts.LineData, 0, len(series))
	uniques := make([]opts.LineData, 0, len(series))
	for _, r := range series {
		dates = append(dates, r.Timestamp.UTC().Format(dateLayout))
		counts = append(counts, opts.LineData{Value: r.Count})
		uniques = append(uniques, opts.LineData{Value: r.Uniques})
	}

	line.SetXAxis(dates).
		AddSeries("Count", counts).
		AddSeries("Uniques", uniques, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	return line
}

// starsChart builds the cumulative star count over time.
func starsChart(id string, stars []models.StarRecord) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   chartWidth,
			Height:  chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Stars"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	dates := make([]string, 0, len(stars))
	counts := make([]opts.LineData, 0, len(stars))
	for i, r := range stars {
		dates = append(dates, r.StarredAt.UTC().Format(dateLayout))
		counts = append(counts, opts.LineData{Value: i + 1})
	}

	line.SetXAxis(dates).AddSeries("Count", counts)
	return line
}
