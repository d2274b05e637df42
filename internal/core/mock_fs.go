package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	files    map[string][]byte
	dirs     map[string]bool
	writeErr error
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// SetFile registers a file with the given content, creating parent
// directories implicitly.
func (m *MockFileSystem) SetFile(name string, data []byte) {
	name = filepath.Clean(name)
	m.files[name] = data
	for dir := filepath.Dir(name); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// SetDir registers an (possibly empty) directory.
func (m *MockFileSystem) SetDir(name string) {
	m.dirs[filepath.Clean(name)] = true
}

// FailWrites makes all subsequent WriteFile calls return err.
func (m *MockFileSystem) FailWrites(err error) {
	m.writeErr = err
}

func (m *MockFileSystem) ReadFile(_ context.Context, name string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(_ context.Context, name string, data []byte, _ os.FileMode) error {
	if m.writeErr != nil {
		return &fs.PathError{Op: "open", Path: name, Err: m.writeErr}
	}
	m.SetFile(name, data)
	return nil
}

// ReadDir lists the immediate children of a directory in sorted order,
// matching os.ReadDir.
func (m *MockFileSystem) ReadDir(_ context.Context, name string) ([]os.DirEntry, error) {
	name = filepath.Clean(name)
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []os.DirEntry
	add := func(child string, isDir bool) {
		if !seen[child] {
			seen[child] = true
			entries = append(entries, mockDirEntry{name: child, dir: isDir})
		}
	}

	prefix := name + string(filepath.Separator)
	for f := range m.files {
		if rest, ok := strings.CutPrefix(f, prefix); ok {
			child, _, nested := strings.Cut(rest, string(filepath.Separator))
			add(child, nested)
		}
	}
	for d := range m.dirs {
		if rest, ok := strings.CutPrefix(d, prefix); ok {
			child, _, _ := strings.Cut(rest, string(filepath.Separator))
			add(child, true)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MockFileSystem) Stat(_ context.Context, name string) (os.FileInfo, error) {
	name = filepath.Clean(name)
	if data, ok := m.files[name]; ok {
		return mockFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if m.dirs[name] {
		return mockFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string { return e.name }
func (e mockDirEntry) IsDir() bool  { return e.dir }
func (e mockDirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
