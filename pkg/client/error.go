package client

import "fmt"

// Kind classifies an API failure. Callers branch on kinds instead of
// inspecting status codes or response shapes.
type Kind int

const (
	// KindTransport covers connection, timeout and decode failures.
	KindTransport Kind = iota
	// KindValidation covers 400 responses with per-field messages.
	KindValidation
	// KindUnauthorized covers 401 responses.
	KindUnauthorized
	// KindForbidden covers 403 responses.
	KindForbidden
	// KindNotFound covers 404 responses.
	KindNotFound
	// KindConflict covers 409 responses.
	KindConflict
	// KindInternal covers 5xx and unclassified responses.
	KindInternal
)

// String names the kind for logs.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the failure type every client method returns.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Code is the server's error code, empty on transport failures.
	Code string
	// Message is human-readable.
	Message string
	// Fields holds localized per-field messages on validation failures.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// kindForStatus maps an HTTP status to a failure kind.
func kindForStatus(status int) Kind {
	switch status {
	case 400:
		return KindValidation
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	default:
		return KindInternal
	}
}
