package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

func TestOverviewResponseStats(t *testing.T) {
	t.Run("breakdown shape", func(t *testing.T) {
		data := `{
			"total_reports": 42,
			"by_status": [{"status":"pending","count":20},{"status":"in_progress","count":12},{"status":"resolved","count":10}],
			"by_severity": [{"severity":"critical","count":5},{"severity":"high","count":9},{"severity":"low","count":28}]
		}`
		var resp model.OverviewResponse
		gt.NoError(t, json.Unmarshal([]byte(data), &resp)).Required()

		stats := resp.Stats()
		gt.Equal(t, stats, model.OverviewStats{Total: 42, Pending: 20, Resolved: 10, Critical: 5})
		gt.A(t, resp.SeverityBreakdown()).Length(3)
	})

	t.Run("flat shape", func(t *testing.T) {
		data := `{"total_reports": 9, "pending_reports": 4, "resolved_reports": 3, "critical_reports": 1}`
		var resp model.OverviewResponse
		gt.NoError(t, json.Unmarshal([]byte(data), &resp)).Required()

		gt.Equal(t, resp.Stats(), model.OverviewStats{Total: 9, Pending: 4, Resolved: 3, Critical: 1})
		gt.A(t, resp.SeverityBreakdown()).Length(0)
	})

	t.Run("breakdown without matching entries", func(t *testing.T) {
		resp := model.OverviewResponse{
			TotalReports: 3,
			ByStatus:     []model.StatusCount{{Status: types.ReportStatusInProgress, Count: 3}},
			BySeverity:   []model.SeverityStat{},
		}
		gt.Equal(t, resp.Stats(), model.OverviewStats{Total: 3})
	})
}

func TestCategoryStatLabel(t *testing.T) {
	gt.Equal(t, model.CategoryStat{Name: "Wildlife", Icon: "🦊"}.Label(), "🦊 Wildlife")
	gt.Equal(t, model.CategoryStat{Name: "Wildlife"}.Label(), "Wildlife")
}
