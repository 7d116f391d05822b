package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Command line errors
	ErrUsage       ErrorCode = "USAGE"
	ErrInvalidMode ErrorCode = "INVALID_MODE"

	// Conflict markup errors
	ErrMalformedConflict ErrorCode = "MALFORMED_CONFLICT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrPermission   ErrorCode = "PERMISSION"

	// Git errors
	ErrGitCommand ErrorCode = "GIT_COMMAND"
	ErrNotARepo   ErrorCode = "NOT_A_REPO"
)

// UnconflictError represents a structured error with code and details
type UnconflictError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnconflictError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnconflictError) Unwrap() error {
	return e.Wrapped
}

// Is matches any UnconflictError carrying the same code
func (e *UnconflictError) Is(target error) bool {
	var targetErr *UnconflictError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnconflictError with the given code and message
func New(code ErrorCode, message string) *UnconflictError {
	return &UnconflictError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnconflictError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnconflictError {
	return &UnconflictError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *UnconflictError {
	if err == nil {
		return nil
	}
	return &UnconflictError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnconflictError {
	if err == nil {
		return nil
	}
	return &UnconflictError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WrapFS wraps a filesystem error, picking FILE_NOT_FOUND or PERMISSION when the
// cause is recognisable and fallback otherwise.
func WrapFS(err error, fallback ErrorCode, path string) *UnconflictError {
	if err == nil {
		return nil
	}

	code := fallback
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		code = ErrPermission
	}

	var msg string
	switch code {
	case ErrFileNotFound:
		msg = "file not found"
	case ErrPermission:
		msg = "permission denied"
	case ErrFileWrite:
		msg = "failed to write file"
	default:
		msg = "failed to read file"
	}

	return Wrapf(err, code, "%s: %s", msg, path).WithDetail("path", path)
}

// WithDetail adds a detail to the error
func (e *UnconflictError) WithDetail(key string, value interface{}) *UnconflictError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *UnconflictError) WithDetails(details map[string]interface{}) *UnconflictError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var uerr *UnconflictError
	if errors.As(err, &uerr) {
		return uerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an UnconflictError
func GetErrorCode(err error) ErrorCode {
	var uerr *UnconflictError
	if errors.As(err, &uerr) {
		return uerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an UnconflictError
func GetErrorDetails(err error) map[string]interface{} {
	var uerr *UnconflictError
	if errors.As(err, &uerr) {
		return uerr.Details
	}
	return nil
}
