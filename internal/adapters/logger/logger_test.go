package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/madrun/internal/adapters/logger"
	"go.trai.ch/madrun/internal/core/domain"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("building target/madnes")

	assert.Equal(t, "building target/madnes\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")

	assert.Equal(t, "! some warning\n", buf.String())
}

func TestLogger_Debug(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	assert.Empty(t, buf.String(), "debug output should be hidden by default")

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.Equal(t, "shown\n", buf.String())

	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Equal(t, "shown\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(errors.Join(domain.ErrBuildFailed, &domain.ExitError{
		Stage:   domain.StageCompile,
		Outcome: domain.ProcessOutcome{ExitCode: 1},
	}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✗ Error: build failed"), "got: %q", out)
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ compiler exited with status 1")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetJSON(true)

	lg.Error(os.ErrPermission)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "permission denied", record["error"])
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetJSON(true)

	lg.SetOutput(&second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), `"msg":"moved"`, "JSON mode should survive SetOutput")
}

func TestNew(t *testing.T) {
	lg := logger.New()
	require.NotNil(t, lg)
}
