package blobstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore stores blobs as files under a single flat directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir (default "audio").
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "audio"
	}
	return &FileStore{dir: dir}
}

// Put writes data to {dir}/{key}, creating the directory if needed and
// overwriting any existing file. Last writer wins; there is no locking.
func (s *FileStore) Put(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio dir: %w", err)
	}
	path := filepath.Join(s.dir, filepath.Base(key))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// Get reads the blob stored under key. Returns ErrNotFound if it was never
// written (or was written by a store rooted elsewhere).
func (s *FileStore) Get(key string) ([]byte, error) {
	// filepath.Base guards against path traversal in provider-supplied names
	path := filepath.Join(s.dir, filepath.Base(key))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}
