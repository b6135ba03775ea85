package service

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address. Every lookup and insert
// goes through it so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has a local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validPasswordLength(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// validateEmail checks a normalized address for presence and shape.
func validateEmail(email string) error {
	if email == "" {
		return invalidInput(ErrMissingFields)
	}
	if !ValidEmail(email) {
		return invalidInput(ErrInvalidEmail)
	}
	return nil
}

func clock(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return time.Now().UTC()
}
