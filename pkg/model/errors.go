package model

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures so callers can branch without string matching.
type ErrorCode string

const (
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalid            ErrorCode = "INVALID"
	CodeStorageCorrupt     ErrorCode = "STORAGE_CORRUPT"
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	CodeAuthFailure        ErrorCode = "AUTH_FAILURE"
)

// Error is a coded error. Two errors match under errors.Is when their codes match.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// NewError builds a coded error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError attaches a code to an existing error.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

var (
	ErrNotFound           = NewError(CodeNotFound, "not found")
	ErrInvalid            = NewError(CodeInvalid, "invalid")
	ErrStorageCorrupt     = NewError(CodeStorageCorrupt, "storage corrupt")
	ErrStorageUnavailable = NewError(CodeStorageUnavailable, "storage unavailable")
	ErrAuthFailure        = NewError(CodeAuthFailure, "authentication failed")
)

// NotFound reports a missing entity of the given kind.
func NotFound(kind, id string) *Error {
	return NewError(CodeNotFound, fmt.Sprintf("%s %q not found", kind, id))
}

// Invalid reports input rejected at the store boundary.
func Invalid(message string, err error) *Error {
	return WrapError(CodeInvalid, message, err)
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
