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

	// Organizer errors
	ErrInvalidPattern    ErrorCode = "INVALID_PATTERN"
	ErrMissingProjection ErrorCode = "MISSING_PROJECTION"
	ErrPresetInvalid     ErrorCode = "PRESET_INVALID"
	ErrSortInvalid       ErrorCode = "SORT_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input extraction errors
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrInputFormat ErrorCode = "INPUT_FORMAT"
)

// ClassorgError represents a structured error with code and details
type ClassorgError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClassorgError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClassorgError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ClassorgError) Is(target error) bool {
	var targetErr *ClassorgError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClassorgError with the given code and message
func New(code ErrorCode, message string) *ClassorgError {
	return &ClassorgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClassorgError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClassorgError {
	return &ClassorgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ClassorgError
func Wrap(err error, code ErrorCode, message string) *ClassorgError {
	if err == nil {
		return nil
	}
	return &ClassorgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClassorgError {
	if err == nil {
		return nil
	}
	return &ClassorgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ClassorgError) WithDetail(key string, value interface{}) *ClassorgError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cerr *ClassorgError
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClassorgError
func GetErrorCode(err error) ErrorCode {
	var cerr *ClassorgError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ErrUnknown
}
