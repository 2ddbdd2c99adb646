package scenario

import (
	"login-clean-starter/internal/domain/auth"
	"login-clean-starter/internal/usecase"
)

// Fixture is the state a single scenario runs against. A new one is built
// before every scenario and released right after it.
type Fixture struct {
	Provider   auth.Provider
	Controller *usecase.LoginController
}

type ProviderFactory func() auth.Provider

type FixtureFactory func() *Fixture

func NewFixtureFactory(newProvider ProviderFactory, emails *usecase.EmailValidator) FixtureFactory {
	return func() *Fixture {
		provider := newProvider()
		return &Fixture{
			Provider:   provider,
			Controller: usecase.NewLoginController(provider, emails),
		}
	}
}

func (f *Fixture) release() {
	f.Controller = nil
	f.Provider = nil
}
