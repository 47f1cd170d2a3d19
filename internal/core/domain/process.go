package domain

import (
	"fmt"
	"strings"
)

// Command is a fully resolved child process invocation.
type Command struct {
	Name string
	Args []string
	// Env overrides variables of the inherited environment.
	Env map[string]string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ProcessOutcome is the result of one child process run.
type ProcessOutcome struct {
	ExitCode int
}

// Succeeded reports whether the process exited with status zero.
func (o ProcessOutcome) Succeeded() bool {
	return o.ExitCode == 0
}

// Stage names a step of the build-run pipeline.
type Stage string

const (
	// StagePrepare creates the build output directory.
	StagePrepare Stage = "prepare"
	// StageCompile runs the compiler.
	StageCompile Stage = "compile"
	// StageRun runs the compiled target program.
	StageRun Stage = "run"
)

// ExitError carries the outcome of a child process that exited non-zero.
type ExitError struct {
	Stage   Stage
	Command Command
	Outcome ProcessOutcome
}

func (e *ExitError) Error() string {
	name := "target program"
	if e.Stage == StageCompile {
		name = "compiler"
	}
	if e.Outcome.ExitCode < 0 {
		return name + " was terminated by a signal"
	}
	return fmt.Sprintf("%s exited with status %d", name, e.Outcome.ExitCode)
}
