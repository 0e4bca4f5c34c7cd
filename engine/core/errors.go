package core

import (
	"errors"
	"fmt"
)

// Error codes used across the request boundary.
const (
	ErrValidationCode  = "VALIDATION_ERROR"
	ErrUnknownTaskCode = "UNKNOWN_TASK"
	ErrConfigCode      = "CONFIG_ERROR"
	ErrUpstreamCode    = "UPSTREAM_ERROR"
	ErrInternalCode    = "INTERNAL_ERROR"
)

// Error is a coded error surfaced at the request boundary.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a coded error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a code and message.
func WrapError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the error code from err, or ErrInternalCode when err
// carries no code.
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ErrInternalCode
}
