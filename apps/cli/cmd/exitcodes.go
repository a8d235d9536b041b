package cmd

import "fmt"

// Exit codes for green CLI
const (
	// ExitSuccess indicates all assertions passed
	ExitSuccess = 0

	// ExitTestFailure indicates one or more assertions failed
	ExitTestFailure = 1

	// ExitUsageError indicates invalid CLI usage, an unknown operator or
	// a malformed batch file
	ExitUsageError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3
)

// ExitError carries the process exit code for a failed command. A nil Err
// exits silently.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitWith(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}
