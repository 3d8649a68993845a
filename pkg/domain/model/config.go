package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// DefaultRecentLimit is the number of recent reports requested per refresh
const DefaultRecentLimit = 10

// EndpointPaths maps every backend endpoint to a path relative to the base URL
type EndpointPaths struct {
	Overview     string `yaml:"overview"`
	Categories   string `yaml:"categories"`
	Trends       string `yaml:"trends"`
	Locations    string `yaml:"locations"`
	Recent       string `yaml:"recent"`
	Milestones   string `yaml:"milestones"`
	CreateReport string `yaml:"create_report"`
}

// DefaultEndpointPaths returns the canonical /stats/* contract
func DefaultEndpointPaths() EndpointPaths {
	return EndpointPaths{
		Overview:     "/stats/overview",
		Categories:   "/stats/categories",
		Trends:       "/stats/trends",
		Locations:    "/stats/locations",
		Recent:       "/stats/recent",
		Milestones:   "/stats/milestones",
		CreateReport: "/reports",
	}
}

// Path returns the path of a statistics endpoint
func (p EndpointPaths) Path(ep types.Endpoint) string {
	switch ep {
	case types.EndpointOverview:
		return p.Overview
	case types.EndpointCategories:
		return p.Categories
	case types.EndpointTrends:
		return p.Trends
	case types.EndpointLocations:
		return p.Locations
	case types.EndpointRecent:
		return p.Recent
	case types.EndpointMilestones:
		return p.Milestones
	default:
		return ""
	}
}

// WithDefaults fills empty paths from the canonical contract
func (p EndpointPaths) WithDefaults() EndpointPaths {
	d := DefaultEndpointPaths()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&p.Overview, d.Overview)
	fill(&p.Categories, d.Categories)
	fill(&p.Trends, d.Trends)
	fill(&p.Locations, d.Locations)
	fill(&p.Recent, d.Recent)
	fill(&p.Milestones, d.Milestones)
	fill(&p.CreateReport, d.CreateReport)
	return p
}

// Validate validates the endpoint paths
func (p EndpointPaths) Validate() error {
	for _, ep := range types.Endpoints() {
		if path := p.Path(ep); path != "" && !strings.HasPrefix(path, "/") {
			return goerr.New("endpoint path must start with '/'",
				goerr.V("endpoint", ep),
				goerr.V("path", path))
		}
	}
	if p.CreateReport != "" && !strings.HasPrefix(p.CreateReport, "/") {
		return goerr.New("endpoint path must start with '/'",
			goerr.V("endpoint", "create_report"),
			goerr.V("path", p.CreateReport))
	}
	return nil
}

// DashboardConfig is the optional YAML configuration of the dashboard
type DashboardConfig struct {
	Endpoints   EndpointPaths   `yaml:"endpoints"`
	RecentLimit int             `yaml:"recent_limit"`
	Categories  *CategoryStyles `yaml:"categories,omitempty"`
}

// DefaultDashboardConfig returns the configuration used when no file is given
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Endpoints:   DefaultEndpointPaths(),
		RecentLimit: DefaultRecentLimit,
		Categories:  DefaultCategoryStyles(),
	}
}

// ApplyDefaults fills unset values
func (c *DashboardConfig) ApplyDefaults() {
	c.Endpoints = c.Endpoints.WithDefaults()
	if c.RecentLimit == 0 {
		c.RecentLimit = DefaultRecentLimit
	}
	if c.Categories == nil {
		c.Categories = DefaultCategoryStyles()
	}
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if err := c.Endpoints.Validate(); err != nil {
		return goerr.Wrap(err, "invalid endpoints")
	}
	if c.RecentLimit < 0 {
		return goerr.New("recent_limit must not be negative",
			goerr.V("recent_limit", c.RecentLimit))
	}
	if c.Categories != nil {
		if err := c.Categories.Validate(); err != nil {
			return goerr.Wrap(err, "invalid categories")
		}
	}
	return nil
}
