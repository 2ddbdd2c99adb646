package usecase

import (
	"context"

	"login-clean-starter/internal/domain/auth"
	"login-clean-starter/internal/domain/user"
	"login-clean-starter/internal/pkg/errs"
)

// LoginController holds the credentials being entered and the outcome of the
// last login attempt. It is not safe for concurrent use.
type LoginController struct {
	email    string
	password string

	provider auth.Provider
	emails   *EmailValidator

	lastFailure auth.Failure
	hasFailure  bool
	identity    user.Identity
	loggedIn    bool
}

// NewLoginController uses the legacy email pattern when emails is nil.
// The provider is shared with the caller, not owned.
func NewLoginController(provider auth.Provider, emails *EmailValidator) *LoginController {
	if emails == nil {
		emails = NewLegacyEmailValidator()
	}
	return &LoginController{
		provider: provider,
		emails:   emails,
	}
}

func (c *LoginController) Email() string               { return c.email }
func (c *LoginController) Password() string            { return c.password }
func (c *LoginController) SetEmail(email string)       { c.email = email }
func (c *LoginController) SetPassword(password string) { c.password = password }
func (c *LoginController) LoggedIn() bool              { return c.loggedIn }

func (c *LoginController) IsValidEmail() bool {
	return c.emails.IsValid(c.email)
}

// LastFailure reports the classification of the last failed attempt.
// ok is false before any attempt and after a successful one.
func (c *LoginController) LastFailure() (failure auth.Failure, ok bool) {
	return c.lastFailure, c.hasFailure
}

// Identity returns the identity from the last successful attempt.
func (c *LoginController) Identity() (user.Identity, bool) {
	return c.identity, c.loggedIn
}

// Login authenticates the current credentials and records the outcome.
// Errors never reach the caller: an invalid username is recorded as such and
// every other error, whatever its cause, is recorded as an invalid password.
func (c *LoginController) Login(ctx context.Context) {
	identity, err := c.provider.Authenticate(ctx, c.email, c.password)
	if err != nil {
		c.identity = user.Identity{}
		c.loggedIn = false
		c.setFailure(classify(err))
		return
	}

	c.identity = identity
	c.loggedIn = true
	c.clearFailure()
}

func classify(err error) auth.Failure {
	if errs.Is(err, auth.ErrInvalidUsername) {
		return auth.FailureInvalidUsername
	}
	return auth.FailureInvalidPassword
}

func (c *LoginController) setFailure(f auth.Failure) {
	c.lastFailure = f
	c.hasFailure = true
}

func (c *LoginController) clearFailure() {
	c.lastFailure = 0
	c.hasFailure = false
}
