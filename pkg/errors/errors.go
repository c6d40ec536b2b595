package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Precondition errors
	ErrUnsupportedOS ErrorCode = "UNSUPPORTED_OS"
	ErrNotAdmin      ErrorCode = "NOT_ADMIN"
	ErrOffline       ErrorCode = "OFFLINE"
	ErrSudoCache     ErrorCode = "SUDO_CACHE"

	// Package processing errors
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"
	ErrVerifyFailed  ErrorCode = "VERIFY_FAILED"
	ErrPrereqUnmet   ErrorCode = "PREREQ_UNMET"
	ErrDuplicate     ErrorCode = "DUPLICATE_OUTCOME"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// DostrapError represents a structured error with code and details
type DostrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DostrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DostrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DostrapError) Is(target error) bool {
	var targetErr *DostrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DostrapError with the given code and message
func New(code ErrorCode, message string) *DostrapError {
	return &DostrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DostrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DostrapError {
	return &DostrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DostrapError
func Wrap(err error, code ErrorCode, message string) *DostrapError {
	if err == nil {
		return nil
	}
	return &DostrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DostrapError {
	if err == nil {
		return nil
	}
	return &DostrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DostrapError) WithDetail(key string, value interface{}) *DostrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dostrapErr *DostrapError
	if errors.As(err, &dostrapErr) {
		return dostrapErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DostrapError
func GetErrorCode(err error) ErrorCode {
	var dostrapErr *DostrapError
	if errors.As(err, &dostrapErr) {
		return dostrapErr.Code
	}
	return ErrUnknown
}
