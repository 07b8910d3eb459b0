package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

const keyLastSyncTimestamp = "last_sync_timestamp"

// ReadAll returns the snapshot stored under namespace
func (s *Storage) ReadAll(ctx context.Context, namespace string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE namespace = ?`, namespace,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return blob, nil
}

// WriteAll replaces the snapshot stored under namespace
func (s *Storage) WriteAll(ctx context.Context, namespace string, blob []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO snapshots (namespace, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	if blob == nil {
		blob = []byte{}
	}

	if _, err := s.db.ExecContext(ctx, query, namespace, blob, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// SaveLastSyncTimestamp saves the unix time of the last replay of offline operations
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, keyLastSyncTimestamp, timestamp); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}

	return nil
}

// GetLastSyncTimestamp retrieves the unix time of the last replay
// Returns 0 if no replay has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, keyLastSyncTimestamp,
	).Scan(&timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return timestamp, nil
}
