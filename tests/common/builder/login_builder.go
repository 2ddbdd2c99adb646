//go:build unit || e2e

package builder

import (
	"login-clean-starter/internal/domain/auth"
	"login-clean-starter/internal/usecase"
)

type LoginBuilder struct {
	Email    string
	Password string
	Emails   *usecase.EmailValidator
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		Email:    "test@gmail.com",
		Password: "",
	}
}

func (l *LoginBuilder) With(mutate func(*LoginBuilder)) *LoginBuilder {
	mutate(l)
	return l
}

func (l *LoginBuilder) Build(provider auth.Provider) *usecase.LoginController {
	c := usecase.NewLoginController(provider, l.Emails)
	c.SetEmail(l.Email)
	c.SetPassword(l.Password)
	return c
}

// Fluent builder methods
func (l *LoginBuilder) WithEmail(email string) *LoginBuilder {
	l.Email = email
	return l
}

func (l *LoginBuilder) WithPassword(password string) *LoginBuilder {
	l.Password = password
	return l
}

func (l *LoginBuilder) WithEmailValidator(v *usecase.EmailValidator) *LoginBuilder {
	l.Emails = v
	return l
}
