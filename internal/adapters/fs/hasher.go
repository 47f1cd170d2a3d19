package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactHasher = (*Hasher)(nil)

// Hasher computes content digests of build artifacts.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content as 16 hex digits.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", errors.Join(
			domain.ErrArtifactHashFailed,
			zerr.With(zerr.Wrap(err, "failed to open file"), "path", path),
		)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errors.Join(
			domain.ErrArtifactHashFailed,
			zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path),
		)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
