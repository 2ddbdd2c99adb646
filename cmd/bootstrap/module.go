package bootstrap

import (
	"login-clean-starter/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.ScenarioModule,
)
