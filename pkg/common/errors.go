package common

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status reported for a pipeline outcome. Every
// failure in the taxonomy gets a distinct code so scripting callers can tell
// them apart; user cancellation is a success, not a failure.
type ExitCode int

const (
	ExitOK                  ExitCode = 0
	ExitFailure             ExitCode = 1
	ExitInvalidURL          ExitCode = 2
	ExitMissingPrompt       ExitCode = 3
	ExitPromptTooLong       ExitCode = 4
	ExitInvalidDirectory    ExitCode = 5
	ExitConflictingParams   ExitCode = 6
	ExitProjectNotFound     ExitCode = 7
	ExitNoTerminalAvailable ExitCode = 8
	ExitConfigIO            ExitCode = 9
	ExitLaunchBlocked       ExitCode = 10
)

// ErrCancelled is returned when the user cancels the confirmation dialog or
// the project selection prompt. Cancellation is a normal termination path:
// callers must exit 0 and perform no further action.
var ErrCancelled = errors.New("cancelled by user")

// LaunchError is an error in the launch pipeline carrying its exit code.
type LaunchError struct {
	Code ExitCode
	Err  error
}

// Error implements the error interface
func (e *LaunchError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError creates a LaunchError with the given exit code and a
// formatted message.
func NewLaunchError(code ExitCode, format string, v ...interface{}) *LaunchError {
	return &LaunchError{Code: code, Err: fmt.Errorf(format, v...)}
}

// ExitCodeFor maps an error to the process exit code: 0 for nil and user
// cancellation, the taxonomy code for LaunchErrors, 1 for anything else.
func ExitCodeFor(err error) ExitCode {
	if err == nil || errors.Is(err, ErrCancelled) {
		return ExitOK
	}
	var le *LaunchError
	if errors.As(err, &le) {
		return le.Code
	}
	return ExitFailure
}
