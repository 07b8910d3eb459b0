// Package boltdb is the default device-local storage: every snapshot is one
// value in the snapshots bucket, keyed by namespace.
package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

// openTimeout сколько ждать файловую блокировку, которую держит другой процесс
// (например, запущенный fitjournal watch)
const openTimeout = time.Second

var (
	bucketSnapshots = []byte("snapshots")
	bucketMetadata  = []byte("metadata")
)

// Storage stores client snapshots and metadata in a single BoltDB file
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB file at dbPath
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		if errors.Is(err, bolterrors.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", storage.ErrStorageLocked, dbPath)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database. Repeated calls are no-ops.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSnapshots, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
