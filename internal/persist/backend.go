package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Backend stores one state blob.
type Backend interface {
	// Load returns the stored blob, or an error wrapping ErrNoState if
	// nothing has been saved.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored blob. Readers never see a partial write.
	Save(ctx context.Context, data []byte) error
}

// FileBackend keeps the blob in a single file.
type FileBackend struct {
	Path string
}

func (f FileBackend) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoState, f.Path)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes to a temporary file next to Path and renames it over Path.
func (f FileBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// MemoryBackend keeps the blob in memory. It is safe for concurrent use.
type MemoryBackend struct {
	mu    sync.Mutex
	data  []byte
	saved bool
}

func (m *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, ErrNoState
	}
	return slices.Clone(m.data), nil
}

func (m *MemoryBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = slices.Clone(data)
	m.saved = true
	return nil
}
