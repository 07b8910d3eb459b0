package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitjournal/internal/client/storage"
)

func TestStorage_ReadWrite(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.ReadAll(ctx, storage.NamespaceCache)
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	blob := []byte("snapshot")
	require.NoError(t, s.WriteAll(ctx, storage.NamespaceCache, blob))

	// Изменение исходного слайса не влияет на сохраненные данные
	blob[0] = 'X'

	got, err := s.ReadAll(ctx, storage.NamespaceCache)
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), got)
}

func TestStorage_LastSyncTimestamp(t *testing.T) {
	ctx := context.Background()
	s := New()

	ts, err := s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	require.NoError(t, s.SaveLastSyncTimestamp(ctx, 42))
	ts, err = s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)
}
