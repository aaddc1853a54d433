package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}

	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", value)
			assert.Equal(t, want, getLogLevel())
		})
	}
}

func TestFanout(t *testing.T) {
	var info, debug bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	logger := slog.New(h).With("component", "test")

	logger.Debug("only debug")
	logger.Info("both")

	assert.NotContains(t, info.String(), "only debug")
	assert.Contains(t, info.String(), "both")
	assert.Contains(t, debug.String(), "only debug")
	assert.Contains(t, debug.String(), "component=test")

	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}
