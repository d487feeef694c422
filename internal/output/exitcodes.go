package output

import "errors"

// Exit codes:
// 0 = Success (advisories do not change this)
// 1 = Invalid document (bad YAML, model validation failed)
// 2 = Usage error (missing or inaccessible path, bad arguments, config)
const (
	ExitSuccess = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// ExitError is an error that carries an exit code for the CLI.
// Kind optionally names the model error kind, e.g. "MissingValues".
type ExitError struct {
	Code    int
	Kind    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewInvalidError creates an error for a rejected document (exit code 1).
func NewInvalidError(kind, message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInvalid,
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates an error for usage problems (exit code 2).
// Use for: missing document path, nonexistent file, bad flags.
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
	}
}

// NewUsageErrorWithCause creates a usage error wrapping an underlying cause.
func NewUsageErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitUsage for errors without a code,
// which come from argument parsing.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUsage
}
