// Package shell provides a process runner backed by os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// InterruptGracePeriod is how long a child may take to exit after it has been
// interrupted before it is killed.
const InterruptGracePeriod = 5 * time.Second

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
// Children inherit the runner's standard streams, which default to the
// parent's own stdin, stdout and stderr.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner attached to the process's standard streams.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams replaces the streams handed to child processes.
// This is primarily used for testing to capture output.
func (r *Runner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	r.stdin = stdin
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run starts the command and waits for it to exit.
func (r *Runner) Run(ctx context.Context, command domain.Command) (domain.ProcessOutcome, error) {
	if command.Name == "" {
		return domain.ProcessOutcome{}, errors.Join(domain.ErrProcessStartFailed, zerr.New("empty command"))
	}

	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // command comes from the harness config
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = InterruptGracePeriod
	if len(command.Env) > 0 {
		cmd.Env = resolveEnvironment(os.Environ(), command.Env)
	}

	r.logger.Debug("exec " + command.String())

	if err := cmd.Start(); err != nil {
		return domain.ProcessOutcome{}, errors.Join(
			domain.ErrProcessStartFailed,
			zerr.With(zerr.Wrap(err, "failed to start command"), "command", command.Name),
		)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && (exitErr.ExitCode() >= 0 || ctx.Err() == nil) {
			// ExitCode is -1 when the process was terminated by a signal.
			return domain.ProcessOutcome{ExitCode: exitErr.ExitCode()}, nil
		}
		if ctx.Err() != nil {
			return domain.ProcessOutcome{}, errors.Join(
				domain.ErrInterrupted,
				zerr.With(zerr.Wrap(err, "command stopped"), "command", command.Name),
			)
		}
		return domain.ProcessOutcome{}, zerr.With(zerr.Wrap(err, "command failed"), "command", command.Name)
	}

	return domain.ProcessOutcome{ExitCode: 0}, nil
}

// resolveEnvironment applies overrides on top of the system environment.
// The result is sorted so child environments are reproducible.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
