//go:build unit || e2e

package builder

import (
	"login-clean-starter/internal/domain/user"
	"login-clean-starter/internal/infra/authprovider"
)

type RulesBuilder struct {
	Name           string
	RejectUsername string
	RejectPassword string
	IdentityID     string
	DisplayName    string
}

func NewRulesBuilder() *RulesBuilder {
	return &RulesBuilder{
		Name:           "custom",
		RejectUsername: "blocked@gmail.com",
		RejectPassword: "blockedpass",
		IdentityID:     "4242",
		DisplayName:    "Custom Name",
	}
}

func (r *RulesBuilder) With(mutate func(*RulesBuilder)) *RulesBuilder {
	mutate(r)
	return r
}

func (r *RulesBuilder) BuildRules() authprovider.Rules {
	return authprovider.Rules{
		Name:           r.Name,
		RejectUsername: r.RejectUsername,
		RejectPassword: r.RejectPassword,
		Identity:       user.NewIdentity(r.IdentityID, r.DisplayName),
	}
}

func (r *RulesBuilder) BuildProvider() *authprovider.LiteralProvider {
	return authprovider.New(r.BuildRules())
}

// Fluent builder methods
func (r *RulesBuilder) WithRejectUsername(username string) *RulesBuilder {
	r.RejectUsername = username
	return r
}

func (r *RulesBuilder) WithRejectPassword(password string) *RulesBuilder {
	r.RejectPassword = password
	return r
}

func (r *RulesBuilder) WithoutRules() *RulesBuilder {
	r.RejectUsername = ""
	r.RejectPassword = ""
	return r
}
