// Package errors provides sentinel errors, exit codes and structured error
// types for init-web-app.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. Every generation failure kind has its own code so scripts can
// tell them apart.
const (
	ExitSuccess              = 0
	ExitGeneralError         = 1
	ExitValidationError      = 2
	ExitPathExists           = 3
	ExitDirectoryCreateError = 4
	ExitFileWriteError       = 5
	ExitToolLaunchError      = 6
	ExitToolExitError        = 7
	ExitManifestReadError    = 8
	ExitManifestWriteError   = 9
	ExitManifestInvalid      = 10
	ExitCancelled            = 130
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code int
	Err  error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPathExists):
		return ExitPathExists
	case errors.Is(err, ErrDirectoryCreate):
		return ExitDirectoryCreateError
	case errors.Is(err, ErrFileWrite):
		return ExitFileWriteError
	case errors.Is(err, ErrToolLaunch):
		return ExitToolLaunchError
	case errors.Is(err, ErrToolExit):
		return ExitToolExitError
	case errors.Is(err, ErrManifestRead):
		return ExitManifestReadError
	case errors.Is(err, ErrManifestWrite):
		return ExitManifestWriteError
	case errors.Is(err, ErrManifestInvalid):
		return ExitManifestInvalid
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPathExists:
		return "Path Exists"
	case ExitDirectoryCreateError:
		return "Directory Create Failed"
	case ExitFileWriteError:
		return "File Write Failed"
	case ExitToolLaunchError:
		return "Tool Launch Failed"
	case ExitToolExitError:
		return "Tool Exit Failed"
	case ExitManifestReadError:
		return "Manifest Read Failed"
	case ExitManifestWriteError:
		return "Manifest Write Failed"
	case ExitManifestInvalid:
		return "Manifest Invalid"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// DetailError captures structured error information for user-facing
// validation failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file path or flag name (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}

	if e.Hint != "" {
		b.WriteString("; ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
