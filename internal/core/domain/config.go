package domain

import (
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Config describes the toolchain and file layout used by the harness.
type Config struct {
	// Compiler is the toolchain executable, resolved through PATH.
	Compiler string
	// BuildCommand is the compiler subcommand that produces an executable.
	BuildCommand string
	// SourceDir is the source tree handed to the compiler.
	SourceDir string
	// OutputDir receives the compiled binary and is created on demand.
	OutputDir string
	// BinaryName is the file name of the compiled target program.
	BinaryName string
	// OutputFlag is prepended to the output path on the compiler command line.
	OutputFlag string
	// SanitizeFlag is appended when a sanitized build is requested.
	SanitizeFlag string
	// BuildFlags are always appended to the compiler command line.
	BuildFlags []string
	// Environment overrides variables for both child processes.
	Environment map[string]string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Compiler:     DefaultCompiler,
		BuildCommand: DefaultBuildCommand,
		SourceDir:    DefaultSourceDir,
		OutputDir:    DefaultOutputDir,
		BinaryName:   DefaultBinaryName,
		OutputFlag:   DefaultOutputFlag,
		SanitizeFlag: DefaultSanitizeFlag,
	}
}

// Validate checks that the fields needed to build and run are present.
func (c Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"compiler", c.Compiler},
		{"source", c.SourceDir},
		{"output", c.OutputDir},
		{"binary", c.BinaryName},
		{"sanitizeFlag", c.SanitizeFlag},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("required field is empty"), "field", r.field))
		}
	}
	if strings.ContainsRune(c.BinaryName, '/') || strings.ContainsRune(c.BinaryName, filepath.Separator) {
		return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("binary must be a file name"), "binary", c.BinaryName))
	}
	return nil
}

// OutputPath returns the location of the compiled binary.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.BinaryName)
}

// CompilerCommand returns the compiler invocation for the given request.
func (c Config) CompilerCommand(req InvocationRequest) Command {
	args := make([]string, 0, 3+len(c.BuildFlags)+1)
	if c.BuildCommand != "" {
		args = append(args, c.BuildCommand)
	}
	args = append(args, c.SourceDir, c.OutputFlag+c.OutputPath())
	args = append(args, c.BuildFlags...)
	args = append(args, req.BuildFlags(c)...)
	return Command{Name: c.Compiler, Args: args, Env: c.Environment}
}

// TargetCommand returns the target program invocation for the given request.
// A relative output path is anchored at the working directory so that the
// binary is never resolved through PATH.
func (c Config) TargetCommand(req InvocationRequest) Command {
	bin := c.OutputPath()
	if !filepath.IsAbs(bin) {
		bin = "." + string(filepath.Separator) + bin
	}
	return Command{Name: bin, Args: []string{req.InputPath}, Env: c.Environment}
}
