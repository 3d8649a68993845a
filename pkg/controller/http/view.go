package http

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/frontend"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Element IDs of the fragments replaced on every poll
const (
	FragmentReports    = "reportsTableBody"
	FragmentMilestones = "milestonesContainer"
)

// View renders the dashboard page and its fragments
type View struct {
	tmpl            *template.Template
	categories      []model.CategoryOption
	refreshInterval time.Duration
}

// NewView parses the embedded templates
func NewView(categories *model.CategoryStyles, refreshInterval time.Duration) (*View, error) {
	fsys, err := frontend.Templates()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded templates")
	}

	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}

	return &View{
		tmpl:            tmpl,
		categories:      categories.Options(),
		refreshInterval: refreshInterval,
	}, nil
}

type pageData struct {
	Dashboard         *model.Dashboard
	Form              model.FormState
	Categories        []model.CategoryOption
	Severities        []types.Severity
	SelectedSeverity  string
	RefreshIntervalMs int64
}

// RenderPage writes the full dashboard page with the form in the given state
func (v *View) RenderPage(w io.Writer, dash *model.Dashboard, form model.FormState) error {
	selected := form.Values.Severity
	if selected == "" {
		selected = types.SeverityMedium.String()
	}

	data := pageData{
		Dashboard:         dash,
		Form:              form,
		Categories:        v.categories,
		Severities:        types.Severities(),
		SelectedSeverity:  selected,
		RefreshIntervalMs: v.refreshInterval.Milliseconds(),
	}

	if err := v.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		return goerr.Wrap(err, "failed to render dashboard page")
	}
	return nil
}

// Fragments renders the table body and milestone container markup
func (v *View) Fragments(dash *model.Dashboard) (map[string]string, error) {
	var reports, milestones bytes.Buffer

	if err := v.tmpl.ExecuteTemplate(&reports, "reportRows", dash.Reports); err != nil {
		return nil, goerr.Wrap(err, "failed to render report rows")
	}
	if err := v.tmpl.ExecuteTemplate(&milestones, "milestoneCards", dash.Milestones); err != nil {
		return nil, goerr.Wrap(err, "failed to render milestone cards")
	}

	return map[string]string{
		FragmentReports:    reports.String(),
		FragmentMilestones: milestones.String(),
	}, nil
}
