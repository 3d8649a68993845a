package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/utils/apperr"
)

// maxFormBody bounds the size of a report submission
const maxFormBody = 1 << 20

// DashboardHandler serves the dashboard page, its JSON API and the report form
type DashboardHandler struct {
	uc   *UseCases
	view *View
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(uc *UseCases, view *View) *DashboardHandler {
	return &DashboardHandler{
		uc:   uc,
		view: view,
	}
}

// DashboardResponse is the payload polled by the dashboard script
type DashboardResponse struct {
	Counters          model.Counters                          `json:"counters"`
	Charts            map[types.ChartName]*model.ChartSpec    `json:"charts"`
	Endpoints         map[types.Endpoint]model.EndpointStatus `json:"endpoints"`
	Reports           []model.ReportRow                       `json:"reports"`
	Milestones        []model.MilestoneCard                   `json:"milestones"`
	Fragments         map[string]string                       `json:"fragments"`
	UpdatedAt         time.Time                               `json:"updated_at,omitzero"`
	RefreshIntervalMs int64                                   `json:"refresh_interval_ms"`
}

// HandlePage renders the dashboard page with an empty form
func (h *DashboardHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, model.FormState{})
}

func (h *DashboardHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, form model.FormState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.view.RenderPage(w, h.uc.dashboard.Snapshot(), form); err != nil {
		apperr.Handle(r.Context(), err)
	}
}

// HandleDashboard returns the current view state
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	dash := h.uc.dashboard.Snapshot()

	fragments, err := h.view.Fragments(dash)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, &DashboardResponse{
		Counters:          dash.Counters,
		Charts:            dash.Charts,
		Endpoints:         dash.Endpoints,
		Reports:           dash.Reports,
		Milestones:        dash.Milestones,
		Fragments:         fragments,
		UpdatedAt:         dash.UpdatedAt,
		RefreshIntervalMs: h.view.refreshInterval.Milliseconds(),
	})
}

// HandleChart returns one chart spec
func (h *DashboardHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	name := types.ChartName(chi.URLParam(r, "name"))

	spec, err := h.uc.dashboard.Chart(name)
	if err != nil {
		if errors.Is(err, model.ErrChartNotRendered) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(r.Context(), err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, spec)
}

// HandleRefresh runs one refresh cycle and returns its summary
func (h *DashboardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	result := h.uc.refresher.RefreshAll(r.Context())
	writeJSON(r.Context(), w, http.StatusOK, result)
}

// HandleSubmit accepts a report form submission. A JSON body is answered with the
// form state as JSON; a form-encoded body re-renders the page.
func (h *DashboardHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)

	if isJSONRequest(r) {
		values, err := decodeFormJSON(r.Body)
		if err != nil {
			writeError(w, goerr.Wrap(err, "invalid JSON body"), http.StatusBadRequest)
			return
		}

		state := h.uc.submitter.Submit(ctx, values)
		writeJSON(ctx, w, submitStatus(state), state)
		return
	}

	if err := r.ParseForm(); err != nil {
		ctxlog.From(ctx).Info("Failed to parse report form", "error", err)
		h.renderPage(w, r, http.StatusBadRequest, model.FormState{
			Failure: model.FormFailureInvalid,
			Message: &model.FormMessage{Kind: model.FormMessageError, Text: "Error: invalid form"},
		})
		return
	}

	state := h.uc.submitter.Submit(ctx, model.FormValues{
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		CategoryID:  r.PostForm.Get("category_id"),
		LocationID:  r.PostForm.Get("location_id"),
		Severity:    r.PostForm.Get("severity"),
	})

	status := submitStatus(state)
	if state.Succeeded() {
		status = http.StatusOK
	}
	h.renderPage(w, r, status, state)
}

func submitStatus(state model.FormState) int {
	switch {
	case state.Succeeded():
		return http.StatusCreated
	case state.Failure == model.FormFailureInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeFormJSON reads form fields from a JSON object. Numbers are accepted for
// the ID fields and null is treated as empty.
func decodeFormJSON(r io.Reader) (model.FormValues, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return model.FormValues{}, goerr.Wrap(err, "failed to decode form")
	}

	field := func(key string) (string, error) {
		data, ok := raw[key]
		if !ok {
			return "", nil
		}

		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return "", goerr.Wrap(err, "failed to decode field", goerr.V("field", key))
		}
		switch val := v.(type) {
		case nil:
			return "", nil
		case string:
			return val, nil
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), nil
		default:
			return "", goerr.New("unsupported field type", goerr.V("field", key))
		}
	}

	var values model.FormValues
	targets := []struct {
		key string
		dst *string
	}{
		{"title", &values.Title},
		{"description", &values.Description},
		{"category_id", &values.CategoryID},
		{"location_id", &values.LocationID},
		{"severity", &values.Severity},
	}
	for _, t := range targets {
		v, err := field(t.key)
		if err != nil {
			return model.FormValues{}, err
		}
		*t.dst = v
	}
	return values, nil
}
