// Package errors defines the error taxonomy used across the client.
//
// Every failure that can reach a page controller is classified here:
// validation failures caught before a request is sent, authentication
// failures, backend rejections, and transport faults. Controllers branch on
// the type; users only ever see Message (or a generic fallback).
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of a client error.
type ErrorType string

const (
	// ErrorTypeValidation indicates a local input check failed before any
	// request was issued.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeUnauthorized indicates the backend rejected the credential.
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// ErrorTypeForbidden indicates the backend refused the operation for the
	// current role.
	ErrorTypeForbidden ErrorType = "FORBIDDEN"

	// ErrorTypeNotFound indicates the requested resource does not exist
	// server-side.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeExternal indicates the backend answered with a non-success
	// status not covered by a more specific category.
	ErrorTypeExternal ErrorType = "EXTERNAL"

	// ErrorTypeNetwork indicates the request never produced a response
	// (transport error, broken connection, open circuit).
	ErrorTypeNetwork ErrorType = "NETWORK"

	// ErrorTypeInternal indicates an unexpected client-side fault.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the error type carried through the client layers.
type AppError struct {
	Type       ErrorType
	Message    string
	HTTPStatus int
	Cause      error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidation creates a validation error.
func NewValidation(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewUnauthorized creates an authentication failure error.
func NewUnauthorized(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewNotFound creates a not found error.
func NewNotFound(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

// NewNetwork creates a transport-level error.
func NewNetwork(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeNetwork, Message: message, Cause: cause}
}

// NewInternal creates an unexpected internal error.
func NewInternal(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: cause}
}

// FromStatus maps a non-success HTTP status and backend message to a typed
// error. An empty message falls back to a generic one for that category.
func FromStatus(status int, message string) *AppError {
	e := &AppError{HTTPStatus: status, Message: message}
	switch {
	case status == http.StatusUnauthorized:
		e.Type = ErrorTypeUnauthorized
		if e.Message == "" {
			e.Message = "Session expired, please log in again"
		}
	case status == http.StatusForbidden:
		e.Type = ErrorTypeForbidden
		if e.Message == "" {
			e.Message = "You do not have permission to do that"
		}
	case status == http.StatusNotFound:
		e.Type = ErrorTypeNotFound
		if e.Message == "" {
			e.Message = "Resource not found"
		}
	case status >= 400 && status < 500:
		e.Type = ErrorTypeValidation
		if e.Message == "" {
			e.Message = "The request was rejected"
		}
	default:
		e.Type = ErrorTypeExternal
		if e.Message == "" {
			e.Message = "The server could not process the request"
		}
	}
	return e
}

// Wrap wraps an error with additional context, preserving an existing
// AppError category.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:       appErr.Type,
			Message:    fmt.Sprintf("%s: %s", message, appErr.Message),
			HTTPStatus: appErr.HTTPStatus,
			Cause:      appErr.Cause,
		}
	}
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: err}
}

// UserMessage returns the text safe to surface to the user. Unexpected
// errors collapse to a generic fallback; their detail belongs in logs only.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return "Something went wrong, please try again"
}

// typeOf extracts the category, defaulting to INTERNAL.
func typeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsValidation checks whether an error is a validation error.
func IsValidation(err error) bool { return typeOf(err) == ErrorTypeValidation }

// IsUnauthorized checks whether an error is an authentication failure.
func IsUnauthorized(err error) bool { return typeOf(err) == ErrorTypeUnauthorized }

// IsNotFound checks whether an error is a not found error.
func IsNotFound(err error) bool { return typeOf(err) == ErrorTypeNotFound }

// IsNetwork checks whether an error is a transport failure.
func IsNetwork(err error) bool { return typeOf(err) == ErrorTypeNetwork }
