package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingRequiredArgument is returned when a required command line argument is absent.
	ErrMissingRequiredArgument = zerr.New("missing required argument")

	// ErrUnknownArgument is returned when an unrecognized flag or positional argument is given.
	ErrUnknownArgument = zerr.New("unknown argument")

	// ErrInvalidArgument is returned when a flag value cannot be parsed.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidConfig is returned when the loaded configuration is incomplete.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrEnvironment is returned when the build output directory cannot be prepared.
	ErrEnvironment = zerr.New("failed to prepare build environment")

	// ErrCleanFailed is returned when the build output directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean build output")

	// ErrProcessStartFailed is returned when a child process cannot be started at all.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrInterrupted is returned when a child process is stopped because madrun received a signal.
	ErrInterrupted = zerr.New("interrupted")

	// ErrBuildFailed is returned when the compiler does not produce the target program.
	ErrBuildFailed = zerr.New("build failed")

	// ErrTargetFailed is returned when the target program exits with a non-zero status.
	ErrTargetFailed = zerr.New("target program failed")

	// ErrArtifactHashFailed is returned when the built artifact cannot be digested.
	ErrArtifactHashFailed = zerr.New("failed to hash build artifact")
)
