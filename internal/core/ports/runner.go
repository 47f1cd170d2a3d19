package ports

import (
	"context"

	"go.trai.ch/madrun/internal/core/domain"
)

// ProcessRunner runs external commands to completion.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run starts the command, waits for it to exit and reports its outcome.
	//
	// A non-zero exit status is reported through the outcome, not the error.
	// The error is non-nil only when the process could not be run at all.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessOutcome, error)
}
