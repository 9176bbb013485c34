package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure classes the client reacts to.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSelfDelete         = errors.New("cannot delete own account")
)

// ValidationError is a client-side pre-submit failure. Requests carrying a
// ValidationError never reach the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// BackendError is a business error reported by the board API: a non-2xx
// response, with the server's message when the body carried one.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.StatusCode)
}

// Unwrap maps the auth-relevant status codes onto their sentinels so callers
// can branch with errors.Is without losing the server message.
func (e *BackendError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// TransportError is a network or decoding failure: the request never
// produced a usable response from the backend.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerMessage extracts the backend-reported message from err, or returns
// fallback. This is the "show the server's message if present, otherwise a
// generic one" rule applied on every mutation failure.
func ServerMessage(err error, fallback string) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
