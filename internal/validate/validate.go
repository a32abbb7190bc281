// Package validate provides field validation shared by the form-backed
// endpoints. Rule failures carry localization keys, not final messages;
// handlers translate them for the request's language.
package validate

import (
	"net/url"
	"regexp"

	"github.com/aidnetlk/aidnet/internal/localize"
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in
// the domain part.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// URL reports whether s is an absolute http(s) URL. Other schemes
// (ftp://x and friends) are rejected.
func URL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FieldErrors maps field names to localization keys.
type FieldErrors map[string]string

// Add records a failed rule for a field. The first failure per field wins.
func (fe FieldErrors) Add(field, key string) {
	if _, exists := fe[field]; !exists {
		fe[field] = key
	}
}

// Localize resolves every recorded key into a display string for lang.
func (fe FieldErrors) Localize(lang string) map[string]string {
	out := make(map[string]string, len(fe))
	for field, key := range fe {
		out[field] = localize.T(lang, key)
	}
	return out
}

// Error is returned by services when submitted fields fail validation.
type Error struct {
	Fields FieldErrors
}

// NewError creates a validation error from recorded field failures.
func NewError(fields FieldErrors) *Error {
	return &Error{Fields: fields}
}

func (e *Error) Error() string {
	return "validation failed"
}
