package ports

// ArtifactHasher digests build artifacts.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ArtifactHasher interface {
	// ComputeFileHash returns the hex encoded digest of the file's content.
	ComputeFileHash(path string) (string, error)
}
