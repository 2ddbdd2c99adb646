package components

import (
	"log/slog"

	"login-clean-starter/internal/pkg/clock"
	"login-clean-starter/internal/pkg/config"
	"login-clean-starter/internal/scenario"

	"go.uber.org/fx"
)

var ScenarioModule = fx.Module("scenario",
	fx.Provide(
		scenario.LoginScenarios,
		scenario.NewFixtureFactory,
		NewRunner,
	),
)

func NewRunner(
	cfg config.Config,
	scenarios []scenario.Scenario,
	setup scenario.FixtureFactory,
	logger *slog.Logger,
	clk clock.Clock,
) *scenario.Runner {
	return scenario.NewRunner(scenarios, setup,
		scenario.WithLogger(logger),
		scenario.WithClock(clk),
		scenario.WithStopOnFailure(cfg.Scenario.StopOnFailure),
	)
}
