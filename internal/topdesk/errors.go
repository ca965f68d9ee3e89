package topdesk

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the incident search matched zero records. The
// message carries both the raw input and the canonical form that was
// searched so callers can see exactly what was asked of TOPdesk.
type NotFoundError struct {
	Raw       string
	Canonical string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No incident found with number %s (searched as '%s')", e.Raw, e.Canonical)
}

// TransportError indicates the request never produced a usable HTTP
// response: connection failure, timeout or cancellation. Unlike NotFound,
// a retry with the same input may succeed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to TOPdesk failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthError indicates TOPdesk rejected the configured credentials.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("TOPdesk authentication failed (status %d): check the configured credentials", e.StatusCode)
}

// StatusError indicates a non-success HTTP status other than an auth
// rejection.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("TOPdesk returned unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("TOPdesk returned unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
