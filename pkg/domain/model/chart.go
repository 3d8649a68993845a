package model

// ChartType is the chart kind understood by the charting library
type ChartType string

const (
	ChartTypeDoughnut ChartType = "doughnut"
	ChartTypeBar      ChartType = "bar"
	ChartTypeLine     ChartType = "line"
)

// ChartSpec is the declarative configuration consumed by the charting library
type ChartSpec struct {
	Type    ChartType    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData holds labels and datasets
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is a single series. Colour arrays are indexable: shorter arrays loop over the data.
type ChartDataset struct {
	Label           string   `json:"label,omitempty"`
	Data            []int64  `json:"data"`
	BackgroundColor []string `json:"backgroundColor,omitempty"`
	BorderColor     string   `json:"borderColor,omitempty"`
	BorderWidth     int      `json:"borderWidth,omitempty"`
	BorderRadius    int      `json:"borderRadius,omitempty"`
	Fill            bool     `json:"fill,omitempty"`
	Tension         float64  `json:"tension,omitempty"`
}

// ChartOptions holds display options
type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Plugins             ChartPlugins `json:"plugins"`
	Scales              *ChartScales `json:"scales,omitempty"`
}

// ChartPlugins holds plugin options
type ChartPlugins struct {
	Legend ChartLegend `json:"legend"`
}

// ChartLegend configures the legend
type ChartLegend struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

// ChartScales configures the axes
type ChartScales struct {
	Y ChartAxis `json:"y"`
}

// ChartAxis configures a single axis
type ChartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// Copy returns a deep copy of the spec
func (s *ChartSpec) Copy() *ChartSpec {
	if s == nil {
		return nil
	}

	c := *s
	c.Data.Labels = append([]string(nil), s.Data.Labels...)
	c.Data.Datasets = make([]ChartDataset, len(s.Data.Datasets))
	for i, ds := range s.Data.Datasets {
		ds.Data = append([]int64(nil), ds.Data...)
		ds.BackgroundColor = append([]string(nil), ds.BackgroundColor...)
		c.Data.Datasets[i] = ds
	}
	if s.Options.Scales != nil {
		scales := *s.Options.Scales
		c.Options.Scales = &scales
	}
	return &c
}
