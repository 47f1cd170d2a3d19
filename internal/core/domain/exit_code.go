package domain

import "errors"

// Exit codes returned by the harness. A failing child process surfaces its
// own status instead.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitEnvironment = 3
	ExitCannotStart = 127
	// ExitInterrupted follows the shell convention of 128 + SIGINT.
	ExitInterrupted = 130
)

// ExitCode maps an error returned by the application to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, ErrInterrupted) {
		return ExitInterrupted
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Outcome.ExitCode > 0 {
			return exitErr.Outcome.ExitCode
		}
		return ExitFailure
	}

	switch {
	case errors.Is(err, ErrMissingRequiredArgument),
		errors.Is(err, ErrUnknownArgument),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrConfigNotFound),
		errors.Is(err, ErrConfigReadFailed),
		errors.Is(err, ErrConfigParseFailed),
		errors.Is(err, ErrInvalidConfig):
		return ExitUsage
	case errors.Is(err, ErrEnvironment), errors.Is(err, ErrCleanFailed):
		return ExitEnvironment
	case errors.Is(err, ErrProcessStartFailed):
		return ExitCannotStart
	default:
		return ExitFailure
	}
}
