// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the command
//              pipeline. Carries a closed error code, severity, operation
//              context, details, and an optional suggested correction while
//              remaining compatible with Go's standard error interface.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details    map[string]interface{}
	operation  string
	suggestion string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity when wrapping our own type
	if bErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:    message,
			cause:      bErr,
			code:       bErr.code,
			severity:   bErr.severity,
			timestamp:  time.Now(),
			details:    make(map[string]interface{}),
			suggestion: bErr.suggestion,
		}
		for k, v := range bErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and derives severity from it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a named detail value
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithSuggestion attaches a human-readable suggested correction
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.suggestion = suggestion
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded operation name
func (e *Error) Operation() string {
	return e.operation
}

// Suggestion returns the suggested correction, if any
func (e *Error) Suggestion() string {
	return e.suggestion
}

// Detail returns a named detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// HasCode reports whether err (or anything it wraps) carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		if bErr, ok := err.(*Error); ok {
			if bErr.code == code {
				return true
			}
			err = bErr.cause
			continue
		}
		return false
	}
	return false
}

// CodeOf returns the code of err if it is a structured Error, CodeUnknown otherwise
func CodeOf(err error) Code {
	if bErr, ok := err.(*Error); ok {
		return bErr.code
	}
	return CodeUnknown
}
