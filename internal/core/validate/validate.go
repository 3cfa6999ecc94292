// Package validate holds the pure credential-shape checks used by the auth
// facade before any authentication source is consulted.
package validate

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address: local part, @, domain
// with at least one dot. Deliberately loose — the backend is the authority.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

const minPasswordLength = 6

// PasswordReport is the outcome of a password strength check. Errors are in
// check order; callers that display only the first violation rely on it.
type PasswordReport struct {
	Valid  bool
	Errors []string
}

// Password checks each strength rule independently and reports every
// violation: minimum length, uppercase, lowercase, digit — in that order.
func Password(s string) PasswordReport {
	var errs []string
	if len(s) < minPasswordLength {
		errs = append(errs, "password must be at least 6 characters")
	}
	if !containsClass(s, unicode.IsUpper) {
		errs = append(errs, "password must contain an uppercase letter")
	}
	if !containsClass(s, unicode.IsLower) {
		errs = append(errs, "password must contain a lowercase letter")
	}
	if !containsClass(s, unicode.IsDigit) {
		errs = append(errs, "password must contain a digit")
	}
	return PasswordReport{Valid: len(errs) == 0, Errors: errs}
}

func containsClass(s string, is func(rune) bool) bool {
	for _, r := range s {
		if is(r) {
			return true
		}
	}
	return false
}
