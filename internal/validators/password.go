// Package validators holds local input validation that must run before
// any network call is made.
package validators

import (
	"errors"
	"unicode"
)

var (
	// ErrPasswordTooShort is returned for passwords under 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrPasswordNoDigit is returned when the password lacks a digit.
	ErrPasswordNoDigit = errors.New("password must contain a digit")
	// ErrPasswordNoLower is returned when the password lacks a lowercase letter.
	ErrPasswordNoLower = errors.New("password must contain a lowercase letter")
	// ErrPasswordNoUpper is returned when the password lacks an uppercase letter.
	ErrPasswordNoUpper = errors.New("password must contain an uppercase letter")
)

// Password checks the complexity rules applied to every new password
// (registration, password change, recovery): at least 8 characters with
// a digit, a lowercase, and an uppercase letter. Existing passwords are
// never re-checked at login; the server's stored login key is the only
// judge there.
func Password(password string) error {
	if len([]rune(password)) < 8 {
		return ErrPasswordTooShort
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit {
		return ErrPasswordNoDigit
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasUpper {
		return ErrPasswordNoUpper
	}
	return nil
}
