// Package app implements the application layer for madrun.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// App builds the target program and, if the build succeeds, runs it.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.Workspace
	runner       ports.ProcessRunner
	hasher       ports.ArtifactHasher
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspace ports.Workspace,
	runner ports.ProcessRunner,
	hasher ports.ArtifactHasher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		workspace:    workspace,
		runner:       runner,
		hasher:       hasher,
		tracer:       tracer,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath selects a config file. Empty means madrun.yaml if present.
	ConfigPath string
	Verbose    bool
	JSON       bool
}

// Run prepares the output directory, compiles the target program and runs it
// with the request's input file. The target program only runs after a
// successful build. A non-zero child exit is returned as a *domain.ExitError
// joined with domain.ErrBuildFailed or domain.ErrTargetFailed.
func (a *App) Run(ctx context.Context, req domain.InvocationRequest, opts RunOptions) error {
	a.configureLogger(opts.Verbose, opts.JSON)

	if err := req.Validate(); err != nil {
		return err
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.prepare(ctx, cfg.OutputDir); err != nil {
		return err
	}

	if err := a.runStage(ctx, domain.StageCompile, cfg.CompilerCommand(req), domain.ErrBuildFailed); err != nil {
		return err
	}

	a.logArtifact(cfg.OutputPath())

	return a.runStage(ctx, domain.StageRun, cfg.TargetCommand(req), domain.ErrTargetFailed)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	Verbose    bool
	JSON       bool
}

// Clean removes the configured build output directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	a.configureLogger(opts.Verbose, opts.JSON)

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.Info(fmt.Sprintf("removing %s...", cfg.OutputDir))
	if err := a.workspace.Remove(cfg.OutputDir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.OutputDir))
	return nil
}

func (a *App) configureLogger(verbose, json bool) {
	a.logger.SetVerbose(verbose)
	a.logger.SetJSON(json)
}

func (a *App) prepare(ctx context.Context, dir string) error {
	_, span := a.tracer.Start(ctx, string(domain.StagePrepare))
	defer span.End()
	span.SetAttribute("path", dir)

	if err := a.workspace.EnsureDir(dir); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// runStage runs one child process and classifies its failure under category.
func (a *App) runStage(ctx context.Context, stage domain.Stage, cmd domain.Command, category error) error {
	ctx, span := a.tracer.Start(ctx, string(stage))
	defer span.End()
	span.SetAttribute("command", cmd.String())

	outcome, err := a.runner.Run(ctx, cmd)
	if err != nil {
		err = errors.Join(category, err)
		span.RecordError(err)
		return err
	}

	span.SetAttribute("exit_code", outcome.ExitCode)
	if !outcome.Succeeded() {
		err := errors.Join(category, &domain.ExitError{Stage: stage, Command: cmd, Outcome: outcome})
		span.RecordError(err)
		return err
	}
	return nil
}

// logArtifact records the digest of the freshly built binary.
// A digest failure never changes the outcome of the run.
func (a *App) logArtifact(path string) {
	digest, err := a.hasher.ComputeFileHash(path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not hash %s: %v", path, err))
		return
	}
	a.logger.Debug(fmt.Sprintf("built %s (xxh64 %s)", path, digest))
}
