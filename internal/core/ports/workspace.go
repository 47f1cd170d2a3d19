package ports

// Workspace prepares and cleans the build output directory.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// EnsureDir creates the directory and any missing parents.
	// It succeeds if the directory already exists.
	EnsureDir(path string) error

	// Remove deletes the directory and everything below it.
	// It succeeds if the directory does not exist.
	Remove(path string) error
}
