package types

// ReportStatus represents the processing state of a report.
// The backend may send statuses beyond the known ones; they are kept verbatim.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

// String returns the string representation
func (s ReportStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known statuses
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return true
	default:
		return false
	}
}

// BadgeClass returns the CSS class of the status badge
func (s ReportStatus) BadgeClass() string {
	return "status-" + string(s)
}
