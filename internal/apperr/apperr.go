// Package apperr defines the typed error taxonomy shared by all services.
// Handlers never build status codes themselves; the central Fiber error
// handler maps an *Error to the response envelope. Anything that is not an
// *Error is classified as internal and its detail stays server-side.
package apperr

import (
	"errors"
	"fmt"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the one error type services raise. Status drives the HTTP mapping,
// Fields carries the per-field list for validation failures.
type Error struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%d fields)", e.Message, len(e.Fields))
	}
	return e.Message
}

func BadRequest(format string, args ...interface{}) *Error {
	return &Error{Status: 400, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Status: 401, Message: message}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: 404, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Status: 409, Message: fmt.Sprintf(format, args...)}
}

func Validation(fields []FieldError) *Error {
	return &Error{Status: 422, Message: "Validation failed", Fields: fields}
}

func Internal(message string) *Error {
	return &Error{Status: 500, Message: message}
}

// From extracts an *Error from err, or wraps err as an internal error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal Server Error")
}

// StatusOf returns the HTTP status an error maps to.
func StatusOf(err error) int {
	return From(err).Status
}
