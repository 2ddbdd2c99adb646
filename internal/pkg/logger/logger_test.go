//go:build unit

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"login-clean-starter/internal/pkg/config"
	"login-clean-starter/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter(t *testing.T) {
	cfg := config.NewTestConfig().Log

	t.Run("json output with formatted time", func(t *testing.T) {
		cfg := cfg
		cfg.Level = "info"
		cfg.Format = "json"
		var buf bytes.Buffer

		logger.NewWithWriter(&buf, cfg).Info("hello", "scenario", "testCaseLoginSuccess")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "testCaseLoginSuccess", entry["scenario"])
		ts, ok := entry["time"].(string)
		require.True(t, ok)
		assert.Len(t, ts, len(cfg.TimeFormat))
	})

	t.Run("level filter", func(t *testing.T) {
		var buf bytes.Buffer

		l := logger.NewWithWriter(&buf, cfg)
		l.Info("dropped")
		l.Error("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "msg=kept")
	})
}
