package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinkerbridge/tinkerbridge/pkg/graphson"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitTimeout indicates the operation timed out
	ExitTimeout = 3
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration error
	ExitConfigError = 10
	// ExitTranslationError indicates a document failed to translate
	ExitTranslationError = 11
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// HandleError handles an error and returns the appropriate exit code.
// It also prints the error message to the command's error output.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		cmd.PrintErrln("Operation timed out")
		return ExitTimeout
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		cmd.PrintErrln("Error:", cliErr.Message)
		if cliErr.Cause != nil && IsVerbose() {
			cmd.PrintErrln("Cause:", cliErr.Cause)
		}
		return cliErr.Code
	}

	// Translation failures carry a precise structured diagnosis; surface it
	// and the stage context in verbose mode.
	var terr *graphson.TranslationError
	if errors.As(err, &terr) {
		cmd.PrintErrln("Error:", terr.Error())
		if IsVerbose() && len(terr.Context) > 0 {
			cmd.PrintErrln("Context:")
			for k, v := range terr.Context {
				cmd.PrintErrf("  %s: %v\n", k, v)
			}
		}
		return ExitTranslationError
	}

	cmd.PrintErrln("Error:", err.Error())
	return ExitError
}
