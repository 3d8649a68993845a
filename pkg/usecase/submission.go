package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/service/backend"
	"github.com/secmon-lab/ecotrack/pkg/utils/async"
)

// Submission relays report form submissions to the backend
type Submission struct {
	backend   interfaces.StatsBackend
	refresher Refresher
}

var _ FormSubmitter = (*Submission)(nil)

// NewSubmission creates a new Submission. refresher is run once in the background after
// every accepted report, detached from the caller's context.
func NewSubmission(backend interfaces.StatsBackend, refresher Refresher) *Submission {
	return &Submission{
		backend:   backend,
		refresher: refresher,
	}
}

// Submit validates and posts the form. The returned state carries exactly one message.
// The fields are cleared on success and kept otherwise.
func (s *Submission) Submit(ctx context.Context, values model.FormValues) model.FormState {
	logger := ctxlog.From(ctx)

	draft, err := values.Draft()
	if err != nil {
		logger.Info("Rejected invalid report", "error", err)
		return errorState(values, model.FormFailureInvalid, errorText(err.Error()))
	}

	created, err := s.backend.CreateReport(ctx, draft)
	if err != nil {
		if se, ok := backend.AsStatusError(err); ok {
			msg := se.Message
			if msg == "" {
				msg = http.StatusText(se.StatusCode)
			}
			logger.Warn("Backend rejected report", "status", se.StatusCode, "error", msg)
			return errorState(values, model.FormFailureBackend, errorText(msg))
		}

		logger.Error("Failed to submit report", "error", err)
		return errorState(values, model.FormFailureNetwork, model.FormNetworkText)
	}

	logger.Info("Report submitted", "report_id", created.ReportID, "title", draft.Title)

	if s.refresher != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			s.refresher.RefreshAll(ctx)
			return nil
		})
	}

	return model.FormState{
		Message: &model.FormMessage{
			Kind: model.FormMessageSuccess,
			Text: model.FormSuccessText,
		},
	}
}

func errorText(msg string) string {
	return "Error: " + msg
}

func errorState(values model.FormValues, failure model.FormFailure, text string) model.FormState {
	return model.FormState{
		Values:  values,
		Failure: failure,
		Message: &model.FormMessage{
			Kind: model.FormMessageError,
			Text: text,
		},
	}
}
