package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

var keyLastSync = []byte("last_sync_timestamp")

// SaveLastSyncTimestamp implements storage.MetadataStorage
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	buf := binary.BigEndian.AppendUint64(nil, uint64(timestamp))
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketMetadata)
		if err != nil {
			return err
		}
		return bucket.Put(keyLastSync, buf)
	})
	if err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}
	return nil
}

// GetLastSyncTimestamp implements storage.MetadataStorage
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return nil
		}
		v := bucket.Get(keyLastSync)
		if len(v) != 8 {
			// Отправок еще не было
			return nil
		}
		timestamp = int64(binary.BigEndian.Uint64(v))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}
	return timestamp, nil
}
