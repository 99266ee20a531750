// Package apperrors defines the structured error types of the calculator,
// separating configuration problems from evaluation failures and carrying the
// underlying cause so that callers can map it to an exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
