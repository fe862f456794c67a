// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for ringkit.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOverflow        = fmt.Errorf("buffer overflow: target slot is occupied")
	ErrUnderflow       = fmt.Errorf("buffer underflow: no value at read position")
	ErrInvalidCapacity = fmt.Errorf("invalid capacity")
	ErrIndexOutOfRange = fmt.Errorf("slot index out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOverflow
	ErrCodeUnderflow
	ErrCodeInvalidCapacity
	ErrCodeIndexOutOfRange
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error code onto the matching sentinel so that
// errors.Is(err, api.ErrOverflow) and friends work on structured errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeOverflow:
		return ErrOverflow
	case ErrCodeUnderflow:
		return ErrUnderflow
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
