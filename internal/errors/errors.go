package errors

import (
	"errors"
	"fmt"
)

// Exit codes for appserver-setup
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitTemplateNotFound = 2
	ExitResourceNotFound = 3
	ExitRenderFailed     = 4
	ExitWriteFailed      = 5
	ExitPermissionFailed = 6
	ExitConfigError      = 7
	ExitUnknownPlatform  = 8
)

// SetupError is the base error type for appserver-setup
type SetupError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SetupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SetupError) ExitCode() int {
	return e.Code
}

// New creates a new SetupError
func New(code int, message string) *SetupError {
	return &SetupError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SetupError
func Wrap(code int, message string, cause error) *SetupError {
	return &SetupError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// TemplateNotFound returns an error for a missing template source
func TemplateNotFound(path string) *SetupError {
	return New(ExitTemplateNotFound, fmt.Sprintf("template not found: %s", path))
}

// ResourceNotFound returns an error for a missing OS specific resource
func ResourceNotFound(path string) *SetupError {
	return New(ExitResourceNotFound, fmt.Sprintf("resource not found: %s", path))
}

// RenderFailed returns an error for a template that could not be parsed or executed
func RenderFailed(target string, cause error) *SetupError {
	return Wrap(ExitRenderFailed, fmt.Sprintf("failed to render %s", target), cause)
}

// WriteFailed returns an error for a target that could not be written
func WriteFailed(target string, cause error) *SetupError {
	return Wrap(ExitWriteFailed, fmt.Sprintf("failed to write %s", target), cause)
}

// PermissionFailed returns an error for a failed mode change
func PermissionFailed(target string, cause error) *SetupError {
	return Wrap(ExitPermissionFailed, fmt.Sprintf("failed to change mode of %s", target), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *SetupError {
	return Wrap(ExitConfigError, message, cause)
}

// UnknownPlatform returns an error for a platform id without property overrides
func UnknownPlatform(id string) *SetupError {
	return New(ExitUnknownPlatform, fmt.Sprintf("no properties for platform: %q", id))
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SetupError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var setupErr *SetupError
	if errors.As(err, &setupErr) {
		return setupErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
