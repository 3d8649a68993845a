package model

import (
	"time"

	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Counters holds the summary card values keyed by their element IDs
type Counters struct {
	TotalReports    int64 `json:"totalReports"`
	PendingReports  int64 `json:"pendingReports"`
	ResolvedReports int64 `json:"resolvedReports"`
	CriticalReports int64 `json:"criticalReports"`
}

// ReportRow is one rendered row of the recent reports table
type ReportRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CategoryLabel string `json:"category_label"`
	CategoryClass string `json:"category_class"`
	Location      string `json:"location"`
	Severity      string `json:"severity"`
	SeverityClass string `json:"severity_class"`
	Status        string `json:"status"`
	StatusClass   string `json:"status_class"`
	Date          string `json:"date"`
}

// MilestoneCard is one rendered milestone card
type MilestoneCard struct {
	Title         string  `json:"title"`
	Achieved      bool    `json:"achieved"`
	Description   string  `json:"description"`
	Progress      float64 `json:"progress"`
	ProgressLabel string  `json:"progress_label"`
	CurrentCount  int64   `json:"current_count"`
	TargetCount   int64   `json:"target_count"`
	StateLabel    string  `json:"state_label"`
}

// Milestone card labels
const (
	MilestoneAchievedMarker = "🏆"
	MilestoneAchievedLabel  = "✅ Achieved!"
	MilestonePendingLabel   = "🎯 In Progress"
)

// EndpointStatus is the outcome of the latest fetch of one endpoint
type EndpointStatus struct {
	Endpoint    types.Endpoint `json:"endpoint"`
	OK          bool           `json:"ok"`
	Error       string         `json:"error,omitempty"`
	CheckedAt   time.Time      `json:"checked_at"`
	LastSuccess time.Time      `json:"last_success,omitzero"`
}

// Dashboard is the complete view state of the dashboard
type Dashboard struct {
	Counters   Counters                          `json:"counters"`
	Charts     map[types.ChartName]*ChartSpec    `json:"charts"`
	Reports    []ReportRow                       `json:"reports"`
	Milestones []MilestoneCard                   `json:"milestones"`
	Endpoints  map[types.Endpoint]EndpointStatus `json:"endpoints"`
	UpdatedAt  time.Time                         `json:"updated_at,omitzero"`
}

// NewDashboard creates an empty dashboard
func NewDashboard() *Dashboard {
	return &Dashboard{
		Charts:     make(map[types.ChartName]*ChartSpec),
		Reports:    []ReportRow{},
		Milestones: []MilestoneCard{},
		Endpoints:  make(map[types.Endpoint]EndpointStatus),
	}
}

// Copy returns a deep copy of the dashboard
func (d *Dashboard) Copy() *Dashboard {
	c := &Dashboard{
		Counters:   d.Counters,
		Charts:     make(map[types.ChartName]*ChartSpec, len(d.Charts)),
		Reports:    append([]ReportRow{}, d.Reports...),
		Milestones: append([]MilestoneCard{}, d.Milestones...),
		Endpoints:  make(map[types.Endpoint]EndpointStatus, len(d.Endpoints)),
		UpdatedAt:  d.UpdatedAt,
	}
	for name, spec := range d.Charts {
		c.Charts[name] = spec.Copy()
	}
	for ep, status := range d.Endpoints {
		c.Endpoints[ep] = status
	}
	return c
}

// FormMessageKind distinguishes success and error messages
type FormMessageKind string

const (
	FormMessageSuccess FormMessageKind = "success"
	FormMessageError   FormMessageKind = "error"
)

// Form messages
const (
	FormSuccessText = "Report submitted successfully!"
	FormNetworkText = "Network error. Please try again."
)

// FormMessage is the single message shown in the form message region
type FormMessage struct {
	Kind FormMessageKind `json:"kind"`
	Text string          `json:"text"`
}

// FormFailure tells why a submission was not accepted
type FormFailure string

const (
	FormFailureInvalid FormFailure = "invalid"
	FormFailureBackend FormFailure = "backend"
	FormFailureNetwork FormFailure = "network"
)

// FormState is the form after a submission attempt
type FormState struct {
	Values  FormValues   `json:"values"`
	Message *FormMessage `json:"message,omitempty"`
	Failure FormFailure  `json:"failure,omitempty"`
}

// Succeeded reports whether the submission was accepted
func (s *FormState) Succeeded() bool {
	return s.Message != nil && s.Message.Kind == FormMessageSuccess
}
