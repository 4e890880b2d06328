// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Parse errors (100-199): Malformed time specs, configuration and credentials
//   - Remote errors (500-599): Failures reported by the brokerage API
//   - Protocol errors (600-699): Pagination that never terminates, unexpected responses, stream misuse
//   - Handler errors (800-899): Failures raised by scheduled handler code
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidTimeSpec, "time spec must not be empty")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeInvalidTimeToken, "invalid time token %q", token)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeRemoteRequestFailed, "failed to get account", originalErr)
//
//	// Check error class
//	if errors.IsRemoteError(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// CategoryOf returns the failure class of the outermost coded error in err's chain.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	return GetCode(err).Category()
}

func IsParseError(err error) bool {
	return CategoryOf(err) == CategoryParse
}

func IsRemoteError(err error) bool {
	return CategoryOf(err) == CategoryRemote
}

func IsProtocolError(err error) bool {
	return CategoryOf(err) == CategoryProtocol
}

func IsHandlerError(err error) bool {
	return CategoryOf(err) == CategoryHandler
}

// ErrorInfo is the serializable form of an error carried in outcomes and reports.
type ErrorInfo struct {
	Code     ErrorCode `json:"code" yaml:"code"`
	Category Category  `json:"category" yaml:"category"`
	Message  string    `json:"message" yaml:"message"`
}

// ToInfo converts err into an ErrorInfo. It returns nil for a nil error.
func ToInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	code := GetCode(err)

	return &ErrorInfo{
		Code:     code,
		Category: code.Category(),
		Message:  err.Error(),
	}
}
