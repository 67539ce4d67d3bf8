// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     apperr
// Description: Coded application errors shared by the solvers and surfaces
// License:     MIT
// ============================================================================

package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error so that surfaces can map it to a user message
// without matching on error text.
type Code string

const (
	CodeUnknown         Code = "UNKNOWN"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidGeometry Code = "INVALID_GEOMETRY"
	CodeInvalidAngle    Code = "INVALID_ANGLE"
	CodeConfig          Code = "CONFIG"
)

// Error is a message with a Code and an optional cause.
type Error struct {
	code    Code
	message string
	cause   error
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and additional context.
// Returns nil if err is nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: message, cause: err}
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Message returns the message without the cause chain. Surfaces show this
// verbatim to the user.
func (e *Error) Message() string {
	return e.message
}

// HasCode reports whether err, or any error it wraps, carries the given code.
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the first *Error in the chain, or CodeUnknown
// if the chain contains none.
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return CodeUnknown
}

// UserMessage returns the message of the first *Error in the chain, or the
// plain Error() text for foreign errors.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
