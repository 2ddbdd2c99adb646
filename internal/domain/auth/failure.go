package auth

import (
	"login-clean-starter/internal/pkg/errs"
)

var (
	ErrInvalidUsername = errs.New("invalid username")
	ErrInvalidPassword = errs.New("invalid password")
)

// Failure classifies why an authentication attempt was rejected.
type Failure int

const (
	FailureInvalidUsername Failure = iota + 1
	FailureInvalidPassword
)

func (f Failure) String() string {
	switch f {
	case FailureInvalidUsername:
		return "invalid_username"
	case FailureInvalidPassword:
		return "invalid_password"
	default:
		return "unknown"
	}
}

func (f Failure) IsValid() bool {
	switch f {
	case FailureInvalidUsername, FailureInvalidPassword:
		return true
	default:
		return false
	}
}

// Err returns the sentinel error a provider reports for f.
func (f Failure) Err() error {
	switch f {
	case FailureInvalidUsername:
		return ErrInvalidUsername
	case FailureInvalidPassword:
		return ErrInvalidPassword
	default:
		return nil
	}
}
