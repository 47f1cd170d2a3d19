package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/madrun/internal/adapters/config"
	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger), mockLogger
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), domain.PrivateFilePerm)
	require.NoError(t, err)
	return path
}

func TestLoader_Load_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	loader, _ := newLoader(t)

	cfg, err := loader.Load("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_DiscoversFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
binary: madnes-dev
flags: ["-debug"]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load("")

	require.NoError(t, err)
	assert.Equal(t, "madnes-dev", cfg.BinaryName)
	assert.Equal(t, []string{"-debug"}, cfg.BuildFlags)
	assert.Equal(t, domain.DefaultCompiler, cfg.Compiler, "absent keys keep their defaults")
}

func TestLoader_Load_AllFields(t *testing.T) {
	path := createFile(t, t.TempDir(), "custom.yaml", `
compiler: /opt/odin/odin
build: build
source: emu/
output: out
binary: nes
outputFlag: "-out="
sanitizeFlag: "-sanitize:address"
flags: ["-o:speed", "-vet"]
env:
  ODIN_ROOT: /opt/odin
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, domain.Config{
		Compiler:     "/opt/odin/odin",
		BuildCommand: "build",
		SourceDir:    "emu/",
		OutputDir:    "out",
		BinaryName:   "nes",
		OutputFlag:   "-out=",
		SanitizeFlag: "-sanitize:address",
		BuildFlags:   []string{"-o:speed", "-vet"},
		Environment:  map[string]string{"ODIN_ROOT": "/opt/odin"},
	}, cfg)
}

func TestLoader_Load_EmptyBuildCommandIsKept(t *testing.T) {
	path := createFile(t, t.TempDir(), "custom.yaml", `build: ""`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.BuildCommand)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := createFile(t, t.TempDir(), "empty.yaml", "")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed yaml", content: "compiler: [", want: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "compilr: odin", want: domain.ErrConfigParseFailed},
		{name: "wrong type", content: "flags: 3", want: domain.ErrConfigParseFailed},
		{name: "empty compiler", content: `compiler: ""`, want: domain.ErrInvalidConfig},
		{name: "binary with separator", content: "binary: bin/madnes", want: domain.ErrInvalidConfig},
		{name: "empty sanitize flag", content: `sanitizeFlag: ""`, want: domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
		})
	}
}

func TestLoader_Load_ReadFailure(t *testing.T) {
	loader, _ := newLoader(t)

	// A directory cannot be read as a file.
	_, err := loader.Load(t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_UnsupportedVersionWarns(t *testing.T) {
	path := createFile(t, t.TempDir(), domain.ConfigFileName, `version: "2"`)
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(path)

	require.NoError(t, err)
}
