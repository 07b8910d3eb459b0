// Package memory provides a process-local BlobStorage. Nothing survives a
// restart; it backs the "-storage memory" mode and tests.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

// Storage keeps snapshots in a map.
type Storage struct {
	blobs    map[string][]byte
	lastSync int64
	mu       sync.RWMutex
}

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{blobs: make(map[string][]byte)}
}

// ReadAll returns a copy of the blob stored under namespace
func (s *Storage) ReadAll(ctx context.Context, namespace string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[namespace]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return append([]byte(nil), data...), nil
}

// WriteAll replaces the blob stored under namespace
func (s *Storage) WriteAll(ctx context.Context, namespace string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[namespace] = append([]byte(nil), blob...)
	return nil
}

func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSync = timestamp
	return nil
}

func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSync, nil
}

// Close is a no-op, present so every backend can be closed the same way
func (s *Storage) Close() error {
	return nil
}
