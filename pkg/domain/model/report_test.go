package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-05T10:00:00Z", "Mar 5, 2024"},
		{"2024-12-31T23:59:59.123+09:00", "Dec 31, 2024"},
		{"2024-03-05 10:00:00", "Mar 5, 2024"},
		{"2024-03-05", "Mar 5, 2024"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gt.Equal(t, model.FormatDate(tt.input), tt.expected)
		})
	}
}

func TestReportDecode(t *testing.T) {
	t.Run("recent endpoint keys", func(t *testing.T) {
		data := `{"id":12,"title":"Oil spill","category_name":"Water Bodies","category_icon":"💧","location_name":"North Bay","city":"Port","severity":"high","status":"pending","created_at":"2024-03-05 10:00:00"}`
		var r model.Report
		gt.NoError(t, json.Unmarshal([]byte(data), &r)).Required()
		gt.Equal(t, r.ID, types.ReportID(12))
		gt.Equal(t, r.Category, "Water Bodies")
		gt.Equal(t, r.CategoryIcon, "💧")
		gt.Equal(t, r.LocationOrPlaceholder(), "North Bay")
		gt.Equal(t, r.Severity, types.SeverityHigh)
		gt.Equal(t, r.Status, types.ReportStatusPending)
	})

	t.Run("plain keys", func(t *testing.T) {
		data := `{"id":3,"title":"Smog","category":"Pollution","location":"Center","severity":"low","status":"resolved","created_at":"2024-03-05T10:00:00Z"}`
		var r model.Report
		gt.NoError(t, json.Unmarshal([]byte(data), &r)).Required()
		gt.Equal(t, r.Category, "Pollution")
		gt.Equal(t, r.LocationOrPlaceholder(), "Center")
	})

	t.Run("null location uses placeholder", func(t *testing.T) {
		data := `{"id":4,"title":"Litter","category_name":"Waste Management","location_name":null,"severity":"low","status":"pending","created_at":""}`
		var r model.Report
		gt.NoError(t, json.Unmarshal([]byte(data), &r)).Required()
		gt.Equal(t, r.LocationOrPlaceholder(), model.LocationPlaceholder)
	})
}

func TestFormValuesDraft(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		draft, err := model.FormValues{
			Title:       "  Illegal dumping ",
			Description: "Near the river",
			CategoryID:  "3",
			LocationID:  "7",
			Severity:    "high",
		}.Draft()
		gt.NoError(t, err).Required()
		gt.Equal(t, draft.Title, "Illegal dumping")
		gt.Equal(t, draft.CategoryID, types.CategoryID(3))
		gt.V(t, draft.LocationID).NotNil()
		gt.Equal(t, *draft.LocationID, types.LocationID(7))
		gt.Equal(t, draft.Severity, types.SeverityHigh)
	})

	t.Run("empty location becomes null and severity defaults to medium", func(t *testing.T) {
		draft, err := model.FormValues{Title: "Smoke", CategoryID: "1"}.Draft()
		gt.NoError(t, err).Required()
		gt.V(t, draft.LocationID).Nil()
		gt.Equal(t, draft.Severity, types.SeverityMedium)

		body, err := json.Marshal(draft)
		gt.NoError(t, err)
		gt.S(t, string(body)).Contains(`"location_id":null`)
		gt.S(t, string(body)).Contains(`"category_id":1`)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := model.FormValues{CategoryID: "1", Severity: "low"}.Draft()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("title is required")
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := model.FormValues{Title: "x", Severity: "low"}.Draft()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("category is required")
	})

	t.Run("non numeric category", func(t *testing.T) {
		_, err := model.FormValues{Title: "x", CategoryID: "abc"}.Draft()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("category must be a number")
	})

	t.Run("invalid severity", func(t *testing.T) {
		_, err := model.FormValues{Title: "x", CategoryID: "1", Severity: "urgent"}.Draft()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("severity must be one of")
	})
}
