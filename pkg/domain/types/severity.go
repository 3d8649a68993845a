package types

import "strings"

// Severity is the ordinal urgency of a report
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityColors = map[Severity]string{
	SeverityLow:      "#3b82f6",
	SeverityMedium:   "#f59e0b",
	SeverityHigh:     "#fb923c",
	SeverityCritical: "#ef4444",
}

// Severities returns the fixed severity domain ordered from low to critical
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is one of the four levels
func (s Severity) IsValid() bool {
	_, ok := severityColors[s]
	return ok
}

// Color returns the chart colour of the level, empty for unknown levels
func (s Severity) Color() string {
	return severityColors[s]
}

// Label returns the upper-cased chart label
func (s Severity) Label() string {
	return strings.ToUpper(string(s))
}

// BadgeClass returns the CSS class of the severity badge
func (s Severity) BadgeClass() string {
	return "severity-" + string(s)
}
