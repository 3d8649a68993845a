package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/ecotrack/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.With(context.Background(), logger)

	var hasLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasLogger = ctxlog.From(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(next))

	req := httptest.NewRequest(http.MethodPost, "/reports?x=1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.True(t, hasLogger)
	gt.Equal(t, w.Code, http.StatusTeapot)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("HTTP request"))
	gt.Equal(t, entry["level"], any("INFO"))
	gt.Equal(t, entry["method"], any("POST"))
	gt.Equal(t, entry["path"], any("/reports"))
	gt.Equal(t, entry["status"], any(float64(http.StatusTeapot)))
	gt.Equal(t, entry["bytes"], any(float64(len("short and stout"))))
	gt.NotEqual(t, entry["request_id"], nil)
}

func TestLoggingMiddlewareSuccessfulGetIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := ctxlog.With(context.Background(), logger)

	handler := controller.LoggingMiddleware(ctx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	gt.Equal(t, buf.Len(), 0)
}
