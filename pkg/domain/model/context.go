package model

import (
	"context"

	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

type cycleIDKey struct{}

// WithCycleID stores the refresh cycle ID in context
func WithCycleID(ctx context.Context, id types.CycleID) context.Context {
	return context.WithValue(ctx, cycleIDKey{}, id)
}

// CycleIDFromContext returns the refresh cycle ID stored in context
func CycleIDFromContext(ctx context.Context) (types.CycleID, bool) {
	id, ok := ctx.Value(cycleIDKey{}).(types.CycleID)
	return id, ok
}
