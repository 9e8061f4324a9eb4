package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL   = errors.New("invalid API base URL")
	ErrEncodeRequest    = errors.New("failed to encode request body")
	ErrDecodeResponse   = errors.New("failed to decode response body")
	ErrTransport        = errors.New("API request failed")
	ErrTimeout          = errors.New("API request timeout")
	ErrUnauthenticated  = errors.New("no access token available")
	ErrTokenUnavailable = errors.New("failed to obtain access token")
)

// APIError is a non-2xx response. It carries the server's detail message and
// any per-field messages so forms can show them next to the inputs.
type APIError struct {
	StatusCode int
	Method     string
	Path       string

	detail string
	fields map[string]string
}

func (e *APIError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Detail returns the server-provided message, or "" when none was sent.
func (e *APIError) Detail() string {
	return e.detail
}

// FieldErrors returns the first server message per field.
func (e *APIError) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == code
}

func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
