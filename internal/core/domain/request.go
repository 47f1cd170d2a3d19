// Package domain holds the harness invocation model, configuration and error taxonomy.
package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// RomFlag is the command line flag carrying the input file path.
const RomFlag = "--rom"

// InvocationRequest is a parsed harness invocation.
type InvocationRequest struct {
	// InputPath is forwarded unexamined to the target program.
	InputPath string
	// Sanitize requests the memory-instrumented build mode.
	Sanitize bool
}

// Validate reports ErrMissingRequiredArgument if no input file was given.
func (r InvocationRequest) Validate() error {
	if r.InputPath == "" {
		return errors.Join(
			ErrMissingRequiredArgument,
			zerr.With(zerr.New("an input file is required"), "argument", RomFlag),
		)
	}
	return nil
}

// BuildFlags returns the optional compiler flags toggled by this request.
func (r InvocationRequest) BuildFlags(cfg Config) []string {
	var flags []string
	if r.Sanitize {
		flags = append(flags, cfg.SanitizeFlag)
	}
	return flags
}
