// Package apierror defines the error taxonomy shared by services and handlers.
// Every 4xx/5xx response uses the same envelope {"error": <message>} so that
// internal details (stack traces, DB errors) never leak to clients.
package apierror

import (
	"errors"
	"net/http"
)

// Error is the canonical API error: an HTTP status plus a user-facing message.
// Services return *Error; handlers write it verbatim.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string { return e.Message }

// BadRequest covers validation and business-rule failures, including
// uniqueness conflicts and deletes blocked by dependent rows.
func BadRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }

func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Message: msg} }

func Forbidden(msg string) *Error { return &Error{Status: http.StatusForbidden, Message: msg} }

func NotFound(msg string) *Error { return &Error{Status: http.StatusNotFound, Message: msg} }

func TooManyRequests(msg string) *Error {
	return &Error{Status: http.StatusTooManyRequests, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// Status extracts the HTTP status for err; unknown errors map to 500.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// Validation wraps per-field validation errors.
type ValidationError struct {
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validación", Fields: fields}
}
