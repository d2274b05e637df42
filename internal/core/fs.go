package core

import (
	"context"
	"os"
)

// File permission constants used across the codebase.
const (
	// PermOwnerRW is owner read/write only, for files that may carry
	// user-specific paths (config files).
	PermOwnerRW os.FileMode = 0o600

	// PermFile is the default permission for generated output files.
	PermFile os.FileMode = 0o644
)

// FileSystem abstracts filesystem operations for testability.
type FileSystem interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	WriteFile(ctx context.Context, name string, data []byte, perm os.FileMode) error
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (osFileSystem) ReadFile(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFileSystem) WriteFile(_ context.Context, name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osFileSystem) ReadDir(_ context.Context, name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (osFileSystem) Stat(_ context.Context, name string) (os.FileInfo, error) {
	return os.Stat(name)
}
