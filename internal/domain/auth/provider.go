//go:generate mockgen -source=provider.go -destination=../../../tests/mock/auth/provider.go -package=authmock

package auth

import (
	"context"

	"login-clean-starter/internal/domain/user"
)

// Provider turns a username and password into an authenticated identity.
//
// A rejected attempt returns an error for which errors.Is reports
// ErrInvalidUsername or ErrInvalidPassword. Implementations may return other
// errors; callers decide how to classify them.
type Provider interface {
	Authenticate(ctx context.Context, username, password string) (user.Identity, error)
}
