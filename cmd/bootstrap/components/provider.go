package components

import (
	"login-clean-starter/internal/domain/auth"
	"login-clean-starter/internal/infra/authprovider"
	"login-clean-starter/internal/pkg/config"
	"login-clean-starter/internal/scenario"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewProviderFactory,
	),
)

// NewProviderFactory resolves AUTH_PROVIDER once so a bad name fails at startup.
func NewProviderFactory(cfg config.Config) (scenario.ProviderFactory, error) {
	name := cfg.Auth.Provider
	if _, err := authprovider.NewByName(name); err != nil {
		return nil, err
	}
	return func() auth.Provider {
		p, _ := authprovider.NewByName(name)
		return p
	}, nil
}
