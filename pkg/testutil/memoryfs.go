package testutil

import (
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/unconflict/pkg/filesystem"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// Op names the FS method an injected error applies to
type Op string

const (
	OpStat   Op = "stat"
	OpRead   Op = "read"
	OpWrite  Op = "write"
	OpRename Op = "rename"
	OpRemove Op = "remove"
)

// MemoryFS implements types.FS over an afero memory filesystem and records
// how it was used
type MemoryFS struct {
	fs types.FS

	mu         sync.Mutex
	errorPaths map[Op]map[string]error
	writes     map[string]int
	reads      map[string]int
}

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		fs:         filesystem.NewMemory(),
		errorPaths: make(map[Op]map[string]error),
		writes:     make(map[string]int),
		reads:      make(map[string]int),
	}
}

// NewMemoryFSWith creates a filesystem holding files
func NewMemoryFSWith(t *testing.T, files map[string]string) *MemoryFS {
	t.Helper()
	m := NewMemoryFS()
	for path, content := range files {
		require.NoError(t, m.fs.WriteFile(path, []byte(content), 0644))
	}
	return m
}

// InjectError makes op on path fail with err
func (m *MemoryFS) InjectError(op Op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errorPaths[op] == nil {
		m.errorPaths[op] = make(map[string]error)
	}
	m.errorPaths[op][path] = err
}

func (m *MemoryFS) injected(op Op, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorPaths[op][path]
}

// Writes returns how many times path was the target of WriteFile or Rename
func (m *MemoryFS) Writes(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[path]
}

// Reads returns how many times path was read
func (m *MemoryFS) Reads(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[path]
}

// Content returns the content of path, failing the test if it cannot be read
func (m *MemoryFS) Content(t *testing.T, path string) string {
	t.Helper()
	data, err := m.fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists
func (m *MemoryFS) Exists(path string) bool {
	_, err := m.fs.Stat(path)
	return err == nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	if err := m.injected(OpStat, name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return m.fs.Stat(name)
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	if err := m.injected(OpRead, name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	m.mu.Lock()
	m.reads[name]++
	m.mu.Unlock()
	return m.fs.ReadFile(name)
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := m.injected(OpWrite, name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	m.mu.Lock()
	m.writes[name]++
	m.mu.Unlock()
	return m.fs.WriteFile(name, data, perm)
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	if err := m.injected(OpRename, newpath); err != nil {
		return &fs.PathError{Op: "rename", Path: newpath, Err: err}
	}
	m.mu.Lock()
	m.writes[newpath]++
	m.mu.Unlock()
	return m.fs.Rename(oldpath, newpath)
}

func (m *MemoryFS) Remove(name string) error {
	if err := m.injected(OpRemove, name); err != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}
	return m.fs.Remove(name)
}

var _ types.FS = (*MemoryFS)(nil)
