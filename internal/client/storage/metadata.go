package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the unix time of the last replay of offline operations
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the unix time of the last replay
	// Returns 0 if no replay has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)
}
