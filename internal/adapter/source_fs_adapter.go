// Package adapter contains the filesystem and persistence adapters used by the
// domain layer.
package adapter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// SourceFSAdapter abstracts filesystem access for the checker so the domain
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Open returns a streaming reader for the file at path.
	Open(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path so the domain can distinguish
	// between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

const gitDirName = ".git"

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
// Only .git directories are never entered; everything else, including
// vendor trees, is visited.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || filepath.Base(path) == gitDirName {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(ctx context.Context, path m.Path) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the user's own source tree
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
