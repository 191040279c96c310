// Package validate implements the form checks used by the login and
// registration flows. Every function is total: it never fails and only
// reports whether the input is acceptable.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PasswordMode selects how strict IsValidPassword is.
type PasswordMode string

const (
	// ModeSimple requires at least 6 characters.
	ModeSimple PasswordMode = "simple"
	// ModeStrong requires at least 8 characters with an upper-case letter,
	// a lower-case letter and a digit.
	ModeStrong PasswordMode = "strong"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// IsValidEmail reports whether s has the local@domain.tld shape. No DNS
// lookup is performed.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPassword checks s against mode. Unknown modes never validate.
func IsValidPassword(s string, mode PasswordMode) bool {
	switch mode {
	case ModeSimple:
		return utf8.RuneCountInString(s) >= 6
	case ModeStrong:
		if utf8.RuneCountInString(s) < 8 {
			return false
		}
		var upper, lower, digit bool
		for _, r := range s {
			switch {
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= '0' && r <= '9':
				digit = true
			}
		}
		return upper && lower && digit
	default:
		return false
	}
}

// IsValidName requires two or more characters after trimming and only ASCII
// letters and whitespace.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 2 && nameRe.MatchString(s)
}
