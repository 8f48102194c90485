// Package errors provides structured error types for Tileboard.
//
// Every failure that aborts a render carries a machine-readable [Code], so
// callers can tell a malformed position from a missing sprite without
// parsing messages:
//
//   - INVALID_NOTATION: empty or malformed board string
//   - INVALID_POSITION: malformed or out-of-range algebraic coordinate
//   - INVALID_SIZE: non-positive tile or board size
//   - INVALID_OPTION: bad color or option value
//   - ASSET_LOAD: missing or corrupt sprite or font file
//   - SIZE_MISMATCH: sprites that are not equal-size squares
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidNotation, "empty position")
//	if errors.Is(err, errors.ErrCodeInvalidNotation) {
//	    // Handle notation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeAssetLoad, origErr, "unable to load font: %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the render pipeline.
const (
	// Input validation errors
	ErrCodeInvalidNotation Code = "INVALID_NOTATION"
	ErrCodeInvalidPosition Code = "INVALID_POSITION"
	ErrCodeInvalidSize     Code = "INVALID_SIZE"
	ErrCodeInvalidOption   Code = "INVALID_OPTION"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Asset errors
	ErrCodeAssetLoad    Code = "ASSET_LOAD"
	ErrCodeSizeMismatch Code = "SIZE_MISMATCH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
