package model

import "github.com/secmon-lab/ecotrack/pkg/domain/types"

// OverviewStats holds the four summary counters
type OverviewStats struct {
	Total    int64
	Pending  int64
	Resolved int64
	Critical int64
}

// StatusCount is one entry of the by-status breakdown
type StatusCount struct {
	Status types.ReportStatus `json:"status"`
	Count  int64              `json:"count"`
}

// SeverityStat is the number of reports for one severity level
type SeverityStat struct {
	Severity types.Severity `json:"severity"`
	Count    int64          `json:"count"`
}

// OverviewResponse is the overview payload of the backend.
// It accepts both the breakdown shape (by_status / by_severity) and the flat
// shape (pending_reports / resolved_reports / critical_reports).
type OverviewResponse struct {
	TotalReports int64          `json:"total_reports"`
	ByStatus     []StatusCount  `json:"by_status,omitempty"`
	BySeverity   []SeverityStat `json:"by_severity,omitempty"`

	PendingReports  *int64 `json:"pending_reports,omitempty"`
	ResolvedReports *int64 `json:"resolved_reports,omitempty"`
	CriticalReports *int64 `json:"critical_reports,omitempty"`
}

// Stats derives the summary counters. Breakdown lists take precedence over flat fields.
func (r *OverviewResponse) Stats() OverviewStats {
	stats := OverviewStats{Total: r.TotalReports}

	if r.ByStatus != nil {
		for _, item := range r.ByStatus {
			switch item.Status {
			case types.ReportStatusPending:
				stats.Pending = item.Count
			case types.ReportStatusResolved:
				stats.Resolved = item.Count
			}
		}
	} else {
		stats.Pending = deref(r.PendingReports)
		stats.Resolved = deref(r.ResolvedReports)
	}

	if r.BySeverity != nil {
		for _, item := range r.BySeverity {
			if item.Severity == types.SeverityCritical {
				stats.Critical = item.Count
			}
		}
	} else {
		stats.Critical = deref(r.CriticalReports)
	}

	return stats
}

// SeverityBreakdown returns the severity distribution carried by the overview, nil for the flat shape
func (r *OverviewResponse) SeverityBreakdown() []SeverityStat {
	return r.BySeverity
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// CategoryStat is the number of reports in one category
type CategoryStat struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int64  `json:"count"`
}

// Label returns the chart label with the category icon
func (c CategoryStat) Label() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}

// LocationStat is the number of reports at one location
type LocationStat struct {
	Name   string `json:"name"`
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
	Count  int64  `json:"count"`
}

// TrendPoint is the number of reports in one month
type TrendPoint struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}
