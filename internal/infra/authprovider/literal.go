package authprovider

import (
	"context"

	"login-clean-starter/internal/domain/auth"
	"login-clean-starter/internal/domain/user"
	"login-clean-starter/internal/pkg/errs"
)

const (
	NameProduction = "production"
	NameFake       = "fake"
)

var ErrUnknownProvider = errs.New("unknown auth provider")

// Rules configures which literal credentials a LiteralProvider rejects.
// An empty RejectUsername or RejectPassword disables that check.
type Rules struct {
	Name           string
	RejectUsername string
	RejectPassword string
	Identity       user.Identity
}

// LiteralProvider rejects credentials by exact string match and otherwise
// returns a fixed identity. The username rule is checked before the password
// rule, so a request matching both is reported as an invalid username.
type LiteralProvider struct {
	rules Rules
}

var _ auth.Provider = (*LiteralProvider)(nil)

func New(rules Rules) *LiteralProvider {
	return &LiteralProvider{rules: rules}
}

func NewProduction() *LiteralProvider {
	return New(Rules{
		Name:           NameProduction,
		RejectUsername: "real@gmail.com",
		RejectPassword: "realpass",
		Identity:       user.NewIdentity("1111", "Real Name"),
	})
}

// NewFake is the test double used by the scenario suite.
func NewFake() *LiteralProvider {
	return New(Rules{
		Name:           NameFake,
		RejectUsername: "fake@gmail.com",
		RejectPassword: "fakepass",
		Identity:       user.NewIdentity("0000", "Fake Name"),
	})
}

func NewByName(name string) (*LiteralProvider, error) {
	switch name {
	case NameProduction:
		return NewProduction(), nil
	case NameFake:
		return NewFake(), nil
	default:
		return nil, errs.Wrapf(ErrUnknownProvider, "name %q", name)
	}
}

func (p *LiteralProvider) Name() string {
	return p.rules.Name
}

func (p *LiteralProvider) Authenticate(_ context.Context, username, password string) (user.Identity, error) {
	if p.rules.RejectUsername != "" && username == p.rules.RejectUsername {
		return user.Identity{}, p.reject(auth.FailureInvalidUsername)
	}

	if p.rules.RejectPassword != "" && password == p.rules.RejectPassword {
		return user.Identity{}, p.reject(auth.FailureInvalidPassword)
	}

	return p.rules.Identity, nil
}

func (p *LiteralProvider) reject(f auth.Failure) error {
	return errs.Wrapf(f.Err(), "%s provider", p.rules.Name)
}
