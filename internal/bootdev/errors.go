package bootdev

import (
	"errors"
	"fmt"
)

var (
	// ErrRequest is returned when a request could not be sent or its response read.
	ErrRequest = errors.New("request failed")
	// ErrBadStatus is returned when the API answers with a non-success status.
	ErrBadStatus = errors.New("bad status")
	// ErrDecode is returned when a response body is not the expected JSON shape.
	ErrDecode = errors.New("malformed response")
	// ErrMissingField is returned when a required field is absent from a response.
	ErrMissingField = errors.New("missing field")
)

// StatusError describes a non-success HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bad status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("bad status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Unwrap lets errors.Is match ErrBadStatus.
func (e *StatusError) Unwrap() error {
	return ErrBadStatus
}

// FieldError reports a required field that a response did not contain.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrMissingField.
func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

func missing(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
