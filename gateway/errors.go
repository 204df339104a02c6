package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNetwork indicates that no response has been received, including timeouts.
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse indicates a success response which could not be decoded.
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-success response of a backend.
type APIError struct {
	Backend    string // "authors" or "publications"
	StatusCode int
	Message    string            // the "message" field of the response body, can be empty
	Errors     map[string]string // field validation errors, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s service (status %d): %s", e.Backend, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s service: %s", e.Backend, http.StatusText(e.StatusCode))
}

// IsNotFound returns true if the error is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// Message returns the message which the backend supplied with the error, or fallback.
// If there is no message but field validation errors, they are listed, sorted by field.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fallback
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if len(apiErr.Errors) == 0 {
		return fallback
	}
	var fields = make([]string, 0, len(apiErr.Errors))
	for field := range apiErr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for i, field := range fields {
		fields[i] = field + ": " + apiErr.Errors[field]
	}
	return strings.Join(fields, "; ")
}
