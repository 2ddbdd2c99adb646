//go:build unit

package config_test

import (
	"testing"

	"login-clean-starter/internal/pkg/config"
	"login-clean-starter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults reproduce the historical run", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "fake", cfg.Auth.Provider)
		assert.Equal(t, "legacy", cfg.Auth.EmailPolicy)
		assert.False(t, cfg.Scenario.StopOnFailure)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_TIMEZONE_OFFSET", "32400")
		t.Setenv("AUTH_PROVIDER", "production")
		t.Setenv("AUTH_EMAIL_POLICY", "strict")
		t.Setenv("SCENARIO_STOP_ON_FAILURE", "true")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 32400, cfg.Log.TimeZoneOffset)
		assert.Equal(t, "production", cfg.Auth.Provider)
		assert.Equal(t, "strict", cfg.Auth.EmailPolicy)
		assert.True(t, cfg.Scenario.StopOnFailure)
	})

	t.Run("error: malformed value", func(t *testing.T) {
		t.Setenv("SCENARIO_STOP_ON_FAILURE", "sometimes")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process env config")
	})

	t.Run("error: unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.LoadConfig()
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})
}

func TestNewTestConfig(t *testing.T) {
	cfg := config.NewTestConfig()

	assert.Equal(t, "error", cfg.Log.Level)
	assert.NoError(t, cfg.Log.Validate())
	assert.Equal(t, "fake", cfg.Auth.Provider)
}
