package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for any request that fails validation. The
	// specific rule is wrapped alongside it so callers can report which one.
	ErrInvalidInput     = errors.New("invalid_input")
	ErrMissingFields    = errors.New("missing_fields")
	ErrPasswordTooShort = errors.New("password_too_short")
	ErrInvalidEmail     = errors.New("invalid_email")

	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrEmailNotVerified   = errors.New("email_not_verified")
	ErrCodeCooldown       = errors.New("code_cooldown")
	ErrNoSession          = errors.New("no_session")
)

func invalidInput(reason error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, reason)
}
