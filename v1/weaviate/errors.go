package weaviate

import (
	"errors"
	"fmt"
)

// Common Weaviate client errors
var (
	// ErrUnauthorized is returned when the service rejects the credential
	// outright (HTTP 401).
	ErrUnauthorized = errors.New("weaviate: unauthorized")

	// ErrForbidden is returned when the credential is valid but lacks the
	// permission for the attempted operation (HTTP 403).
	ErrForbidden = errors.New("weaviate: permission denied")

	// ErrNotFound is returned when the addressed schema class, object or
	// backup does not exist (HTTP 404).
	ErrNotFound = errors.New("weaviate: not found")

	// ErrUnavailable is returned when the service cannot be reached at the
	// transport level. It is never a substitute for ErrForbidden: a reset
	// connection proves nothing about policy enforcement.
	ErrUnavailable = errors.New("weaviate: service unavailable")
)

// StatusError carries the HTTP status and response body of a failed request.
// It unwraps to one of the sentinel errors above so that callers can classify
// failures with errors.Is without parsing message text.
type StatusError struct {
	Code     int
	Endpoint string
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("weaviate: http %d for %s", e.Code, e.Endpoint)
	}
	return fmt.Sprintf("weaviate: http %d for %s: %s", e.Code, e.Endpoint, e.Body)
}

// Unwrap maps the status code onto the matching sentinel error.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}

// IsPermissionDenied checks if the error is a clean authorization rejection.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsAuthFailure checks if the error is a rejected credential.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConnectionFailure checks if the error is a transport-level failure.
func IsConnectionFailure(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsNotFound checks if the error is a "does not exist" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
