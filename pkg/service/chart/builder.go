package chart

import (
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// CategoryPalette is the doughnut palette of the category chart
var CategoryPalette = []string{
	"#10b981",
	"#3b82f6",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
}

const (
	trendLineColor = "#10b981"
	trendFillColor = "rgba(16, 185, 129, 0.1)"
	locationColor  = "#3b82f6"
)

func baseOptions(legend model.ChartLegend, zeroBaseline bool) model.ChartOptions {
	opts := model.ChartOptions{
		Responsive:          true,
		MaintainAspectRatio: true,
		Plugins:             model.ChartPlugins{Legend: legend},
	}
	if zeroBaseline {
		opts.Scales = &model.ChartScales{Y: model.ChartAxis{BeginAtZero: true}}
	}
	return opts
}

// CategorySpec shows the share of reports per category as a doughnut
func CategorySpec(stats []model.CategoryStat) *model.ChartSpec {
	labels := make([]string, 0, len(stats))
	values := make([]int64, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Label())
		values = append(values, s.Count)
	}

	return &model.ChartSpec{
		Type: model.ChartTypeDoughnut,
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.ChartDataset{{
				Data:            values,
				BackgroundColor: append([]string(nil), CategoryPalette...),
				BorderWidth:     2,
				BorderColor:     "#fff",
			}},
		},
		Options: baseOptions(model.ChartLegend{Display: true, Position: "bottom"}, false),
	}
}

// TrendSpec shows the monthly report count as a filled, smoothed line
func TrendSpec(points []model.TrendPoint) *model.ChartSpec {
	labels := make([]string, 0, len(points))
	values := make([]int64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Month)
		values = append(values, p.Count)
	}

	return &model.ChartSpec{
		Type: model.ChartTypeLine,
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.ChartDataset{{
				Label:           "Reports",
				Data:            values,
				BorderColor:     trendLineColor,
				BackgroundColor: []string{trendFillColor},
				BorderWidth:     3,
				Fill:            true,
				Tension:         0.4,
			}},
		},
		Options: baseOptions(model.ChartLegend{Display: false}, true),
	}
}

// LocationSpec shows the report count per location as bars
func LocationSpec(stats []model.LocationStat) *model.ChartSpec {
	labels := make([]string, 0, len(stats))
	values := make([]int64, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Name)
		values = append(values, s.Count)
	}

	return &model.ChartSpec{
		Type: model.ChartTypeBar,
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.ChartDataset{{
				Label:           "Reports",
				Data:            values,
				BackgroundColor: []string{locationColor},
				BorderRadius:    5,
			}},
		},
		Options: baseOptions(model.ChartLegend{Display: false}, true),
	}
}

// SeveritySpec shows the report count over the fixed severity domain, low to critical.
// Missing levels are shown as zero and unknown levels are dropped.
func SeveritySpec(stats []model.SeverityStat) *model.ChartSpec {
	counts := make(map[types.Severity]int64, len(stats))
	for _, s := range stats {
		if s.Severity.IsValid() {
			counts[s.Severity] += s.Count
		}
	}

	levels := types.Severities()
	labels := make([]string, 0, len(levels))
	values := make([]int64, 0, len(levels))
	colors := make([]string, 0, len(levels))
	for _, level := range levels {
		labels = append(labels, level.Label())
		values = append(values, counts[level])
		colors = append(colors, level.Color())
	}

	return &model.ChartSpec{
		Type: model.ChartTypeBar,
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.ChartDataset{{
				Label:           "Reports",
				Data:            values,
				BackgroundColor: colors,
				BorderRadius:    5,
			}},
		},
		Options: baseOptions(model.ChartLegend{Display: false}, true),
	}
}
