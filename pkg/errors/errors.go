// Package errors provides structured error types for the vosi client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or document validation failures
//   - *_NOT_FOUND: Resource not found
//   - SERVICE_ERROR, NO_ENDPOINT, NETWORK_ERROR: Remote service failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTableNotFound, "no table named %q", name)
//	if errors.Is(err, errors.ErrCodeTableNotFound) {
//	    // Handle lookup error
//	}
//
//	// Wrap a transport failure with the URL that failed
//	err := errors.ServiceError(origErr, url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidURL      Code = "INVALID_URL"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"

	// Resource not found errors
	ErrCodeTableNotFound Code = "TABLE_NOT_FOUND"

	// Remote service errors
	ErrCodeService    Code = "SERVICE_ERROR"
	ErrCodeNoEndpoint Code = "NO_ENDPOINT"
	ErrCodeNetwork    Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	URL     string // Request URL for service errors (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// ServiceError wraps a transport failure for url as a SERVICE_ERROR.
// The URL is kept on the error for diagnostics; see [ServiceURL].
func ServiceError(cause error, url string) *Error {
	return &Error{
		Code:    ErrCodeService,
		Message: fmt.Sprintf("request to %s failed", url),
		URL:     url,
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ServiceURL returns the request URL recorded on the first *Error in err's
// chain that carries one, or "" if there is none.
func ServiceURL(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.URL != "" {
			return e.URL
		}
		err = e.Cause
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
