package config

import (
	"fmt"
	"strings"

	"login-clean-starter/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: none yet, the demo must run with an empty environment
// - default: every value, chosen so that a bare run reproduces the historical behavior
// -----------------------------------------------------------------------------

type Config struct {
	Log      LogConfig
	Auth     AuthConfig
	Scenario ScenarioConfig
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type AuthConfig struct {
	Provider    string `envconfig:"AUTH_PROVIDER" default:"fake"`
	EmailPolicy string `envconfig:"AUTH_EMAIL_POLICY" default:"legacy"`
}

type ScenarioConfig struct {
	StopOnFailure bool `envconfig:"SCENARIO_STOP_ON_FAILURE" default:"false"`
}

func (c LogConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "text", "json":
		return nil
	default:
		return errs.Wrapf(errs.ErrInvalidConfig, "LOG_FORMAT must be text or json, got %q", c.Format)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Log.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Auth: AuthConfig{
			Provider:    "fake",
			EmailPolicy: "legacy",
		},
	}
}
