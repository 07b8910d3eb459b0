package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "fitjournal.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLastSyncTimestamp(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Отправок еще не было
	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 1760500000))
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 1760513400))

	ts, err = store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1760513400), ts)
}

func TestLastSyncTimestamp_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "fitjournal.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 1760513400))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1760513400), ts)
}

func TestLastSyncTimestamp_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	// Save пересоздает bucket
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 42))
	ts, err = store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)
}

func TestLastSyncTimestamp_Closed(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Повторный Close в cleanup ничего не делает
	require.NoError(t, store.Close())

	_, err := store.GetLastSyncTimestamp(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveLastSyncTimestamp(ctx, 1), storage.ErrStorageClosed)
}
