package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/madrun/internal/adapters/telemetry"
	"go.trai.ch/madrun/internal/app"
	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader    *mocks.MockConfigLoader
	workspace *mocks.MockWorkspace
	runner    *mocks.MockProcessRunner
	hasher    *mocks.MockArtifactHasher
	logger    *mocks.MockLogger
	provider  ComponentProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		loader:    mocks.NewMockConfigLoader(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		runner:    mocks.NewMockProcessRunner(ctrl),
		hasher:    mocks.NewMockArtifactHasher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	h.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	application := app.New(h.loader, h.workspace, h.runner, h.hasher, telemetry.NewNoOpTracer(), h.logger)
	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: h.logger,
		}, func() {}, nil
	}
	return h
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), h.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_EmptyArguments verifies that a bare invocation has no side effects.
func TestRun_EmptyArguments(t *testing.T) {
	h := newHarness(t)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{}, stderr, h.provider)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_MissingRom verifies that a missing input file is a usage error.
func TestRun_MissingRom(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"-s"}, new(bytes.Buffer), h.provider)

	assert.Equal(t, domain.ExitUsage, exitCode)
}

// TestRun_SeparatorOnly verifies that "--" is not treated as an empty invocation.
func TestRun_SeparatorOnly(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--"}, new(bytes.Buffer), h.provider)

	assert.Equal(t, domain.ExitUsage, exitCode)
}

// TestRun_UnknownArgument verifies that unknown flags are usage errors.
func TestRun_UnknownArgument(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--rom", "a.nes", "--fast"}, new(bytes.Buffer), h.provider)

	assert.Equal(t, domain.ExitUsage, exitCode)
}

// TestRun_TargetExitCode verifies that the target program's status is passed through.
func TestRun_TargetExitCode(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	h.workspace.EXPECT().EnsureDir("target").Return(nil)
	h.hasher.EXPECT().ComputeFileHash("target/madnes").Return("abc", nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessOutcome{ExitCode: 0}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessOutcome{ExitCode: 3}, nil)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--rom", "game.nes"}, new(bytes.Buffer), h.provider)

	assert.Equal(t, 3, exitCode)
}

// TestRun_BuildFailure verifies that a failed build surfaces the compiler's status.
func TestRun_BuildFailure(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	h.workspace.EXPECT().EnsureDir("target").Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessOutcome{ExitCode: 1}, nil).Times(1)
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrBuildFailed)
	})

	exitCode := run(context.Background(), []string{"--rom", "game.nes", "--sanitize"}, new(bytes.Buffer), h.provider)

	assert.Equal(t, 1, exitCode)
}
