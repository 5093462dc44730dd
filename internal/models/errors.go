package models

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an error that carries the HTTP status it should be reported
// with. All error responses serialize as {"message": "..."}.
type AppError struct {
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports bad, missing, or inconsistent input.
func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Message: fmt.Sprintf("%s not found", resource), Status: http.StatusNotFound}
}

// NewAuthError reports an authentication failure. Callers must use the same
// message for unknown accounts and wrong passwords.
func NewAuthError(message string) *AppError {
	return &AppError{Message: message, Status: http.StatusUnauthorized}
}

// NewTransactionError wraps a failed multi-step write. The underlying error
// is kept for server-side logging.
func NewTransactionError(err error) *AppError {
	return &AppError{Message: "operation failed", Status: http.StatusInternalServerError, Err: err}
}

// StatusOf returns the HTTP status an error should be reported with.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for an error.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal Server Error"
}
