package blobstore

import "errors"

// ErrNotFound is returned by Get when no blob exists under the given key.
var ErrNotFound = errors.New("blob not found")

// Store persists named audio blobs. Keys are flat filenames; a Put under an
// existing key overwrites the previous blob.
type Store interface {
	// Put writes data under key, creating the storage location if absent.
	Put(key string, data []byte) error

	// Get returns the blob stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
}
