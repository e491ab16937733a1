// Package errors defines the application error taxonomy. Every failure is
// one of a small set of explicit kinds, and the delivery layer decides the
// user-visible behavior per kind.
package errors

import (
	"net/http"

	"echofinds/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// Is matches by error code, so detail-carrying copies still compare equal
// to their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrNotFound covers requests for resources that do not exist. Page-flow
	// routes translate it into a silent redirect.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource does not exist",
		"",
	)

	// ErrForbidden covers ownership violations: editing or deleting a
	// product the session user does not own. Behavior mirrors ErrNotFound
	// (silent redirect, zero mutation) so ownership cannot be probed.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to modify this resource",
		"",
	)

	// ErrValidationFailed covers malformed or incomplete input.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The submitted data is invalid",
		"",
	)

	// ErrInvalidCredentials is returned on login failure.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// ErrLoginRequired covers access to pages that need an authenticated
	// session; the delivery layer redirects to /login.
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Please log in first",
		"",
	)

	// ErrEmailTaken is returned when signup hits the email uniqueness
	// constraint.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"An account with this email already exists",
		"",
	)

	// ErrEmptyCart is returned when checkout is attempted with nothing in
	// the cart.
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"The cart is empty",
		"",
	)

	// ErrStoreUnavailable covers database failures that should not be
	// exposed as anything more specific.
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"The store is temporarily unavailable",
		"",
	)
)

// NewStoreError wraps a database error as StoreUnavailable, keeping the
// underlying message as detail.
func NewStoreError(err error, message string) *BaseError {
	details := message
	if err != nil {
		details = err.Error()
	}

	return ErrStoreUnavailable.WithDetails(details)
}
