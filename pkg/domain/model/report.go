package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// LocationPlaceholder is displayed for reports without a location
const LocationPlaceholder = "N/A"

// DisplayDateLayout is the short date format used in the reports table
const DisplayDateLayout = "Jan 2, 2006"

// Report is one entry of the recent reports list
type Report struct {
	ID           types.ReportID     `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Category     string             `json:"category"`
	CategoryIcon string             `json:"category_icon,omitempty"`
	Location     *string            `json:"location"`
	City         string             `json:"city,omitempty"`
	Severity     types.Severity     `json:"severity"`
	Status       types.ReportStatus `json:"status"`
	CreatedAt    string             `json:"created_at"`
}

// UnmarshalJSON accepts both category/category_name and location/location_name keys
func (r *Report) UnmarshalJSON(data []byte) error {
	type plain Report
	var raw struct {
		plain
		CategoryName *string `json:"category_name"`
		LocationName *string `json:"location_name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Report(raw.plain)
	if r.Category == "" && raw.CategoryName != nil {
		r.Category = *raw.CategoryName
	}
	if r.Location == nil && raw.LocationName != nil {
		r.Location = raw.LocationName
	}
	return nil
}

// LocationOrPlaceholder returns the location name or the placeholder when absent
func (r Report) LocationOrPlaceholder() string {
	if r.Location == nil || strings.TrimSpace(*r.Location) == "" {
		return LocationPlaceholder
	}
	return *r.Location
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a backend timestamp as a short date such as "Mar 5, 2024".
// Unparseable values are returned unchanged.
func FormatDate(s string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return s
}

// ReportDraft is the body of a report creation request
type ReportDraft struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description"`
	CategoryID  types.CategoryID  `json:"category_id" validate:"required,gt=0"`
	LocationID  *types.LocationID `json:"location_id" validate:"omitempty,gt=0"`
	Severity    types.Severity    `json:"severity" validate:"required,oneof=low medium high critical"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the draft
func (d *ReportDraft) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return goerr.New(fieldMessage(fe), goerr.V("field", fe.Field()), goerr.V("tag", fe.Tag()))
		}
		return goerr.Wrap(err, "invalid report")
	}
	return nil
}

var fieldNames = map[string]string{
	"Title":      "title",
	"CategoryID": "category",
	"LocationID": "location",
	"Severity":   "severity",
}

func fieldMessage(fe validator.FieldError) string {
	name := fieldNames[fe.Field()]
	if name == "" {
		name = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "oneof":
		return name + " must be one of low, medium, high, critical"
	case "max":
		return name + " is too long"
	default:
		return name + " is invalid"
	}
}

// FormValues holds the raw named fields of the report form
type FormValues struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	LocationID  string `json:"location_id"`
	Severity    string `json:"severity"`
}

// IsEmpty reports whether every field is blank
func (v FormValues) IsEmpty() bool {
	return v == FormValues{}
}

// Draft builds a validated ReportDraft from the form fields
func (v FormValues) Draft() (*ReportDraft, error) {
	draft := &ReportDraft{
		Title:       strings.TrimSpace(v.Title),
		Description: strings.TrimSpace(v.Description),
		Severity:    types.Severity(strings.TrimSpace(v.Severity)),
	}
	if draft.Severity == "" {
		draft.Severity = types.SeverityMedium
	}

	if s := strings.TrimSpace(v.CategoryID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, goerr.New("category must be a number", goerr.V("category_id", s))
		}
		draft.CategoryID = types.CategoryID(id)
	}

	if s := strings.TrimSpace(v.LocationID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, goerr.New("location must be a number", goerr.V("location_id", s))
		}
		loc := types.LocationID(id)
		draft.LocationID = &loc
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return draft, nil
}

// CreatedReport is the backend response to a report creation
type CreatedReport struct {
	Success  bool           `json:"success"`
	ReportID types.ReportID `json:"report_id"`
}
