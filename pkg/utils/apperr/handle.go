package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
)

// Handle logs an error that could not be returned to a caller
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if id, ok := model.CycleIDFromContext(ctx); ok {
		logger = logger.With("cycle_id", id.String())
	}
	logger.Error("application error", "error", err)
}
