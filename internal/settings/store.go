package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists opaque blobs under small integer keys.
type Store interface {
	Read(key uint32) ([]byte, error)
	Write(key uint32, data []byte) error
}

// FileStore keeps one file per key inside Dir.
type FileStore struct {
	Dir string
}

func (f FileStore) path(key uint32) string {
	return filepath.Join(f.Dir, fmt.Sprintf("%d.bin", key))
}

// Read returns the blob for key. A missing key yields an error wrapping
// os.ErrNotExist.
func (f FileStore) Read(key uint32) ([]byte, error) {
	return os.ReadFile(f.path(key))
}

// Write replaces the blob for key, going through a temporary file so a
// crash never leaves a truncated blob behind.
func (f FileStore) Write(key uint32, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.Dir, ".settings-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu sync.Mutex
	m  map[uint32][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore { return &MemStore{m: map[uint32][]byte{}} }

// Read returns a copy of the blob for key.
func (s *MemStore) Read(key uint32) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.m[key]
	if !ok {
		return nil, fmt.Errorf("settings: key %d: %w", key, os.ErrNotExist)
	}
	return append([]byte(nil), b...), nil
}

// Write stores a copy of data under key.
func (s *MemStore) Write(key uint32, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), data...)
	return nil
}
