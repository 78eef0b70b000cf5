// Package core holds the small abstractions shared by the rest of hdrver.
package core

import (
	"context"
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileSystem abstracts the read-only file access hdrver needs.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// OSFileSystem reads from the host filesystem.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile opens path, reads it fully and closes it before returning.
// The context is checked once before the file is opened.
func (f *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu     sync.RWMutex
	files  map[string][]byte
	errors map[string]error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:  make(map[string][]byte),
		errors: make(map[string]error),
	}
}

// SetFile stores data under path.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
}

// SetError makes every read of path fail with err.
func (m *MockFileSystem) SetError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path] = err
}

// ReadFile returns the stored data, the injected error, or fs.ErrNotExist.
func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
