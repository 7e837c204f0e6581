package validator

import "regexp"

// Identity fields are judged, never rewritten: callers that accept a
// value proceed with the original string.
const (
	minUsernameRunes = 3
	maxUsernameRunes = 50
	minPasswordRunes = 8
	maxPasswordRunes = 128
	maxEmailRunes    = 254
)

var (
	usernameCharsetRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

	// Minimal syntactic shape: no-whitespace local part, "@", domain
	// with at least one dot. Deliberately not RFC 5322.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername checks a username against the fixed acceptance
// rules, short-circuiting on the first failure.
func ValidateUsername(s string) Result {
	return first(
		notBlank("username", s, "Username is required"),
		minRunes("username", s, minUsernameRunes, "Username must be at least 3 characters"),
		maxRunes("username", s, maxUsernameRunes, "Username must be less than 50 characters"),
		matches("username", s, usernameCharsetRegex, "Username can only contain letters, numbers, dots, underscores, and hyphens"),
	)
}

// ValidatePassword checks only length bounds. Strength policy belongs
// to the identity provider, not this layer.
func ValidatePassword(s string) Result {
	return first(
		notEmpty("password", s, "Password is required"),
		minRunes("password", s, minPasswordRunes, "Password must be at least 8 characters"),
		maxRunes("password", s, maxPasswordRunes, "Password must be less than 128 characters"),
	)
}

// ValidateEmail performs a syntactic sanity check, not full
// email-grammar validation.
func ValidateEmail(s string) Result {
	return first(
		notBlank("email", s, "Email is required"),
		matches("email", s, emailShapeRegex, "Invalid email format"),
		maxRunes("email", s, maxEmailRunes, "Email is too long"),
	)
}
