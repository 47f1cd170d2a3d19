package domain

const (
	// ConfigFileName is the name of the optional harness configuration file.
	ConfigFileName = "madrun.yaml"

	// DefaultCompiler is the toolchain executable used to build the target program.
	DefaultCompiler = "odin"

	// DefaultBuildCommand is the compiler subcommand that produces an executable.
	DefaultBuildCommand = "build"

	// DefaultSourceDir is the source tree handed to the compiler.
	DefaultSourceDir = "src/"

	// DefaultOutputDir is the directory that receives the compiled binary.
	DefaultOutputDir = "target"

	// DefaultBinaryName is the file name of the compiled target program.
	DefaultBinaryName = "madnes"

	// DefaultOutputFlag prefixes the output path on the compiler command line.
	DefaultOutputFlag = "-out:"

	// DefaultSanitizeFlag enables the memory-instrumented build mode.
	DefaultSanitizeFlag = "-sanitize:memory"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
