package usecase

import (
	"regexp"

	"login-clean-starter/internal/pkg/errs"
)

type EmailPolicy string

const (
	// EmailPolicyLegacy keeps the historical pattern. Its last segment is a
	// character class, so the top-level part must be exactly one character
	// out of g, m, a, i, l, p, y, c, o, u, r, b or '|'.
	EmailPolicyLegacy EmailPolicy = "legacy"
	// EmailPolicyStrict requires the top-level part to be gmail or pycogroup.
	EmailPolicyStrict EmailPolicy = "strict"
)

var ErrUnknownEmailPolicy = errs.New("unknown email policy")

var (
	legacyEmailRegex = regexp.MustCompile(`^[a-z0-9\._+-]{8,64}@[a-z]+\.[gmail|pycogroup]$`)
	strictEmailRegex = regexp.MustCompile(`^[a-z0-9._+-]{8,64}@[a-z]+\.(?:gmail|pycogroup)$`)
)

func (p EmailPolicy) String() string {
	return string(p)
}

func (p EmailPolicy) IsValid() bool {
	switch p {
	case EmailPolicyLegacy, EmailPolicyStrict:
		return true
	default:
		return false
	}
}

type EmailValidator struct {
	policy EmailPolicy
	regex  *regexp.Regexp
}

func NewEmailValidator(policy EmailPolicy) (*EmailValidator, error) {
	switch policy {
	case EmailPolicyLegacy:
		return &EmailValidator{policy: policy, regex: legacyEmailRegex}, nil
	case EmailPolicyStrict:
		return &EmailValidator{policy: policy, regex: strictEmailRegex}, nil
	default:
		return nil, errs.Wrapf(ErrUnknownEmailPolicy, "policy %q", policy)
	}
}

func NewLegacyEmailValidator() *EmailValidator {
	return &EmailValidator{policy: EmailPolicyLegacy, regex: legacyEmailRegex}
}

func (v *EmailValidator) Policy() EmailPolicy {
	return v.policy
}

func (v *EmailValidator) IsValid(email string) bool {
	return v.regex.MatchString(email)
}
