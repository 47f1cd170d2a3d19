// Package fs provides filesystem adapters for the build output directory.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// EnsureDir creates path and any missing parents with domain.DirPerm.
func (w *Workspace) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return errors.Join(
			domain.ErrEnvironment,
			zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path),
		)
	}
	return nil
}

// Remove deletes path recursively. A missing path is not an error.
func (w *Workspace) Remove(path string) error {
	switch filepath.Clean(path) {
	case ".", string(filepath.Separator):
		return errors.Join(
			domain.ErrCleanFailed,
			zerr.With(zerr.New("refusing to remove directory"), "path", path),
		)
	}

	if err := os.RemoveAll(path); err != nil {
		return errors.Join(
			domain.ErrCleanFailed,
			zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path),
		)
	}
	return nil
}
