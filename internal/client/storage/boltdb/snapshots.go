package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

// ReadAll returns the snapshot stored under namespace
func (s *Storage) ReadAll(ctx context.Context, namespace string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var blob []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return storage.ErrBlobNotFound
		}

		data := bucket.Get([]byte(namespace))
		if data == nil {
			return storage.ErrBlobNotFound
		}

		// Значение валидно только внутри транзакции - копируем
		blob = make([]byte, len(data))
		copy(blob, data)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return blob, nil
}

// WriteAll replaces the snapshot stored under namespace
func (s *Storage) WriteAll(ctx context.Context, namespace string, blob []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put([]byte(namespace), blob); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
