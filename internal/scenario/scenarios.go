package scenario

import (
	"context"

	"login-clean-starter/internal/domain/auth"

	"github.com/stretchr/testify/assert"
)

const (
	NameInvalidEmail         = "testCaseInvalidEmail"
	NameLoginSuccess         = "testCaseLoginSuccess"
	NameLoginInvalidUserName = "testCaseLoginInvalidUserName"
	NameLoginInvalidPassword = "testCaseLoginInvalidPassword"
)

type Scenario struct {
	Name string
	Run  func(ctx context.Context, a *assert.Assertions, f *Fixture)
}

// LoginScenarios returns the login suite in its fixed run order.
func LoginScenarios() []Scenario {
	return []Scenario{
		{Name: NameInvalidEmail, Run: invalidEmail},
		{Name: NameLoginSuccess, Run: loginSuccess},
		{Name: NameLoginInvalidUserName, Run: loginInvalidUserName},
		{Name: NameLoginInvalidPassword, Run: loginInvalidPassword},
	}
}

func invalidEmail(_ context.Context, a *assert.Assertions, f *Fixture) {
	f.Controller.SetEmail("test@mailinator.com")

	actual := f.Controller.IsValidEmail()

	a.False(actual, "email should be rejected")
}

func loginSuccess(ctx context.Context, a *assert.Assertions, f *Fixture) {
	f.Controller.SetEmail("test@gmail.com")

	f.Controller.Login(ctx)

	failure, ok := f.Controller.LastFailure()
	a.False(ok, "unexpected login failure %s", failure)
}

func loginInvalidUserName(ctx context.Context, a *assert.Assertions, f *Fixture) {
	f.Controller.SetEmail("fake@gmail.com")
	f.Controller.SetPassword("realpass")

	f.Controller.Login(ctx)

	failure, ok := f.Controller.LastFailure()
	if a.True(ok, "login should fail") {
		a.Equal(auth.FailureInvalidUsername, failure)
	}
}

func loginInvalidPassword(ctx context.Context, a *assert.Assertions, f *Fixture) {
	f.Controller.SetEmail("real@gmail.com")
	f.Controller.SetPassword("fakepass")

	f.Controller.Login(ctx)

	failure, ok := f.Controller.LastFailure()
	if a.True(ok, "login should fail") {
		a.Equal(auth.FailureInvalidPassword, failure)
	}
}
