package types

import (
	"strconv"

	"github.com/google/uuid"
)

// ReportID represents a report identifier assigned by the backend
type ReportID int64

// String returns the string representation
func (id ReportID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// CategoryID represents a category identifier
type CategoryID int64

// String returns the string representation
func (id CategoryID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// LocationID represents a location identifier
type LocationID int64

// String returns the string representation
func (id LocationID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// CycleID identifies a single refresh cycle in logs
type CycleID string

// String returns the string representation
func (id CycleID) String() string {
	return string(id)
}

// NewCycleID creates a new CycleID
func NewCycleID() CycleID {
	return CycleID(uuid.New().String())
}

// ChartName is the canvas slot a chart is bound to
type ChartName string

const (
	ChartCategory ChartName = "categoryChart"
	ChartTrends   ChartName = "trendsChart"
	ChartLocation ChartName = "locationsChart"
	ChartSeverity ChartName = "severityChart"
)

// String returns the string representation
func (n ChartName) String() string {
	return string(n)
}

// IsValid checks if the chart name is one of the known canvas slots
func (n ChartName) IsValid() bool {
	switch n {
	case ChartCategory, ChartTrends, ChartLocation, ChartSeverity:
		return true
	default:
		return false
	}
}

// ChartNames returns all canvas slots
func ChartNames() []ChartName {
	return []ChartName{ChartCategory, ChartTrends, ChartLocation, ChartSeverity}
}

// Endpoint is a logical statistics endpoint of the backend
type Endpoint string

const (
	EndpointOverview   Endpoint = "overview"
	EndpointCategories Endpoint = "categories"
	EndpointTrends     Endpoint = "trends"
	EndpointLocations  Endpoint = "locations"
	EndpointRecent     Endpoint = "recent"
	EndpointMilestones Endpoint = "milestones"
)

// String returns the string representation
func (e Endpoint) String() string {
	return string(e)
}

// IsValid checks if the endpoint is known
func (e Endpoint) IsValid() bool {
	switch e {
	case EndpointOverview, EndpointCategories, EndpointTrends, EndpointLocations, EndpointRecent, EndpointMilestones:
		return true
	default:
		return false
	}
}

// Endpoints returns every statistics endpoint fetched in a refresh cycle
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointOverview,
		EndpointCategories,
		EndpointTrends,
		EndpointLocations,
		EndpointRecent,
		EndpointMilestones,
	}
}
