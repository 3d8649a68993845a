package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ecotrack/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("DEBUG"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("warning"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel(""), slog.LevelInfo)
	gt.Equal(t, logging.ParseLogLevel("verbose"), slog.LevelInfo)

	gt.True(t, logging.ValidLogLevel("Info"))
	gt.False(t, logging.ValidLogLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("JSON")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLoggerAutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("refreshed", "cycle_id", "abc")

	gt.S(t, buf.String()).Contains(`"cycle_id":"abc"`)
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatConsole)
	logger.Debug("hidden")
	logger.Info("shown")

	gt.S(t, buf.String()).Contains("shown")
	gt.S(t, buf.String()).NotContains("hidden")
}
