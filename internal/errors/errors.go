package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorInput      = 2   // Indicates a syntax error or malformed input.
	ExitErrorArithmetic = 3   // Indicates overflow, division by zero or a zero denominator.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag,
// environment value or configuration file.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// Unwrap returns the underlying error, usually a ValidationError.
func (e ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError records which input line failed and why. The cause is
// usually a fraction error or a calc syntax error.
type EvaluationError struct {
	// Expr is the statement that was being evaluated.
	Expr string
	// Line is the 1-based input line, or 0 when the statement did not come
	// from a file.
	Line int
	// Cause is the underlying error that triggered this evaluation error.
	Cause error
}

// Error returns the statement, its position and the cause.
func (e EvaluationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Expr, e.Cause)
	}
	return fmt.Sprintf("%q: %v", e.Expr, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e EvaluationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewInvalidSettingError reports a setting that failed validation. The
// result is a ConfigError wrapping a ValidationError for field.
func NewInvalidSettingError(field, format string, a ...any) error {
	verr := ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
	return ConfigError{Message: verr.Error(), Err: verr}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
