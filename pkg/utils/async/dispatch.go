package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
)

// Dispatch runs handler in a new goroutine with panic recovery. The handler gets a
// background context that outlives the caller's, so a finished refresh cycle or
// HTTP request does not cancel it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// newBackgroundContext carries the logger and refresh cycle ID over to a fresh context
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	if id, ok := model.CycleIDFromContext(ctx); ok {
		newCtx = model.WithCycleID(newCtx, id)
	}

	return newCtx
}
