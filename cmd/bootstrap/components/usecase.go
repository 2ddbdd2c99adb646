package components

import (
	"login-clean-starter/internal/pkg/clock"
	"login-clean-starter/internal/pkg/config"
	"login-clean-starter/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewEmailValidator,
	),
)

func NewEmailValidator(cfg config.Config) (*usecase.EmailValidator, error) {
	return usecase.NewEmailValidator(usecase.EmailPolicy(cfg.Auth.EmailPolicy))
}
