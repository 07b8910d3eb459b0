package journal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitjournal/internal/client/api"
	"github.com/iudanet/fitjournal/internal/client/cache"
	"github.com/iudanet/fitjournal/internal/client/connectivity"
	"github.com/iudanet/fitjournal/internal/client/offline"
	"github.com/iudanet/fitjournal/internal/client/queue"
	"github.com/iudanet/fitjournal/internal/client/storage/memory"
	"github.com/iudanet/fitjournal/internal/models"
	pkgapi "github.com/iudanet/fitjournal/pkg/api"
)

var today = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	service     Service
	reader      *ReaderMock
	transport   *queue.TransportMock
	conn        *connectivity.Manual
	queue       *queue.Queue
	coordinator *offline.Coordinator
	strategy    *cache.Strategy
}

func jsonResponse(t *testing.T, status int, v any) *api.Response {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &api.Response{Status: status, Data: data}
}

func newTestEnv(t *testing.T, online bool, reader *ReaderMock) *testEnv {
	t.Helper()
	ctx := context.Background()
	now := func() time.Time { return today }

	blobs := memory.New()
	store := cache.NewStore[api.Response](ctx, blobs, cache.StoreOptions{Now: now}, nil)
	strategy := cache.NewStrategy(store, nil)

	ok := func(ctx context.Context, endpoint string, payload json.RawMessage) (*api.Response, error) {
		return &api.Response{Status: http.StatusOK}, nil
	}
	transport := &queue.TransportMock{CreateFunc: ok, UpdateFunc: ok, DeleteFunc: ok}

	qcfg := queue.DefaultConfig()
	qcfg.Now = now
	q := queue.New(ctx, transport, NewInvalidator(strategy), blobs, qcfg, nil)

	conn := connectivity.NewManual(online)
	coordinator := offline.New(ctx, q, conn, blobs, blobs, offline.Config{Now: now}, nil)
	t.Cleanup(coordinator.Close)

	if reader == nil {
		reader = &ReaderMock{}
	}

	return &testEnv{
		service:     NewService(coordinator, q, strategy, reader, blobs, Options{Now: now, StatsTTL: 30 * time.Second}, nil),
		reader:      reader,
		transport:   transport,
		conn:        conn,
		queue:       q,
		coordinator: coordinator,
		strategy:    strategy,
	}
}

func TestLogExercise(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false, nil)

	result, err := env.service.LogExercise(ctx, "  Jumping  Jacks ", 25, "")
	require.NoError(t, err)

	require.NotNil(t, result.Operation)
	assert.NotEmpty(t, result.EntryID)
	assert.Equal(t, models.MethodCreate, result.Operation.Type)
	assert.Equal(t, pkgapi.EntriesPath, result.Operation.Endpoint)
	assert.Equal(t, models.OperationPending, result.Operation.Status)

	var req pkgapi.LogEntryRequest
	require.NoError(t, json.Unmarshal(result.Operation.Payload, &req))
	assert.Equal(t, pkgapi.LogEntryRequest{
		ID:       result.EntryID,
		Exercise: "jumping jacks",
		Date:     "2026-10-15",
		Count:    25,
	}, req)
}

func TestLogExercise_InvalidInput(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false, nil)

	tests := []struct {
		name     string
		exercise string
		date     string
		count    int
	}{
		{name: "empty exercise", exercise: "", count: 10},
		{name: "zero count", exercise: "pushups", count: 0},
		{name: "future date", exercise: "pushups", count: 10, date: "2026-10-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.LogExercise(ctx, tt.exercise, tt.count, tt.date)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, env.coordinator.Operations())
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false, nil)

	updated, err := env.service.UpdateEntry(ctx, "e-42", 30)
	require.NoError(t, err)
	assert.Equal(t, models.MethodUpdate, updated.Operation.Type)
	assert.Equal(t, "/api/v1/entries/e-42", updated.Operation.Endpoint)
	assert.JSONEq(t, `{"count":30}`, string(updated.Operation.Payload))

	deleted, err := env.service.DeleteEntry(ctx, "e-42")
	require.NoError(t, err)
	assert.Equal(t, models.MethodDelete, deleted.Operation.Type)
	assert.Empty(t, deleted.Operation.Payload)

	_, err = env.service.UpdateEntry(ctx, "../stats", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = env.service.DeleteEntry(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, env.coordinator.PendingOperations(), 2)
}

func TestListEntries_ReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	entries := []pkgapi.Entry{
		{ID: "1", Exercise: "pushups", Date: "2026-10-14", Count: 20, XP: 20},
		{ID: "2", Exercise: "pushups", Date: "2026-10-15", Count: 25, XP: 25},
	}
	reader := &ReaderMock{
		GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
			return jsonResponse(t, http.StatusOK, entries), nil
		},
	}
	env := newTestEnv(t, true, reader)

	filter := ListFilter{Exercise: "PushUps", From: "2026-10-01"}
	got, err := env.service.ListEntries(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	again, err := env.service.ListEntries(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, entries, again)

	require.Len(t, reader.GetCalls(), 1)
	call := reader.GetCalls()[0]
	assert.Equal(t, pkgapi.EntriesPath, call.Endpoint)
	assert.Equal(t, map[string]any{"exercise": "pushups", "from": "2026-10-01"}, call.Params)
}

func TestListEntries_InvalidatedBySuccessfulWrite(t *testing.T) {
	ctx := context.Background()
	reader := &ReaderMock{
		GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
			if endpoint == pkgapi.StatsPath {
				return jsonResponse(t, http.StatusOK, pkgapi.Stats{TotalXP: 100}), nil
			}
			return jsonResponse(t, http.StatusOK, []pkgapi.Entry{}), nil
		},
	}
	env := newTestEnv(t, true, reader)

	_, err := env.service.ListEntries(ctx, ListFilter{})
	require.NoError(t, err)
	_, err = env.service.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, reader.GetCalls(), 2)

	_, err = env.service.UpdateEntry(ctx, "7", 12)
	require.NoError(t, err)
	env.queue.Drain(ctx)
	require.Len(t, env.transport.UpdateCalls(), 1)

	_, err = env.service.ListEntries(ctx, ListFilter{})
	require.NoError(t, err)
	_, err = env.service.Stats(ctx)
	require.NoError(t, err)

	assert.Len(t, reader.GetCalls(), 4, "entries and stats are fetched again")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	want := pkgapi.Stats{TotalXP: 1250, Level: 4, CurrentStreak: 6, LongestStreak: 11}
	reader := &ReaderMock{
		GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
			return jsonResponse(t, http.StatusOK, want), nil
		},
	}
	env := newTestEnv(t, true, reader)

	got, err := env.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &want, got)

	ttl, ok := env.strategy.Store().GetTTL(ctx, pkgapi.StatsPath)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, ttl)
}

func TestRead_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("server error is not cached", func(t *testing.T) {
		reader := &ReaderMock{
			GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
				return jsonResponse(t, http.StatusInternalServerError, pkgapi.ErrorResponse{Error: "db down"}), nil
			},
		}
		env := newTestEnv(t, true, reader)

		_, err := env.service.Stats(ctx)
		require.ErrorIs(t, err, ErrRequestFailed)
		assert.Contains(t, err.Error(), "db down")

		_, err = env.service.Stats(ctx)
		require.Error(t, err)
		assert.Len(t, reader.GetCalls(), 2)
	})

	t.Run("transport error propagates", func(t *testing.T) {
		reader := &ReaderMock{
			GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
				return nil, errors.New("connection refused")
			},
		}
		env := newTestEnv(t, true, reader)

		_, err := env.service.ListEntries(ctx, ListFilter{})
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("empty response is an error", func(t *testing.T) {
		reader := &ReaderMock{
			GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
				return nil, nil
			},
		}
		env := newTestEnv(t, true, reader)

		_, err := env.service.Stats(ctx)
		assert.ErrorIs(t, err, cache.ErrEmptyResponse)
	})

	t.Run("offline miss does not touch the network", func(t *testing.T) {
		env := newTestEnv(t, false, nil)

		_, err := env.service.Stats(ctx)
		assert.ErrorIs(t, err, ErrOffline)
	})

	t.Run("offline hit is served from cache", func(t *testing.T) {
		reader := &ReaderMock{
			GetFunc: func(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error) {
				return jsonResponse(t, http.StatusOK, pkgapi.Stats{Level: 2}), nil
			},
		}
		env := newTestEnv(t, true, reader)
		_, err := env.service.Stats(ctx)
		require.NoError(t, err)

		env.conn.SetOnline(false)
		stats, err := env.service.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Level)
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false, nil)

	_, err := env.service.LogExercise(ctx, "squats", 40, "2026-10-14")
	require.NoError(t, err)

	status, err := env.service.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Offline)
	assert.Len(t, status.Pending, 1)
	assert.Empty(t, status.Failed)
	assert.Empty(t, status.Queued)
	assert.True(t, status.LastSync.IsZero())

	env.conn.SetOnline(true)

	status, err = env.service.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Offline)
	assert.Empty(t, status.Pending)
	assert.Equal(t, today.Unix(), status.LastSync.Unix())
}

func TestSync(t *testing.T) {
	ctx := context.Background()

	t.Run("offline", func(t *testing.T) {
		env := newTestEnv(t, false, nil)
		_, err := env.service.Sync(ctx)
		assert.ErrorIs(t, err, ErrOffline)
	})

	t.Run("online", func(t *testing.T) {
		env := newTestEnv(t, true, nil)

		_, err := env.service.LogExercise(ctx, "pushups", 10, "")
		require.NoError(t, err)

		report, err := env.service.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Replay.Skipped)
		assert.Equal(t, 1, report.Drain.Completed)
		assert.Len(t, env.transport.CreateCalls(), 1)
		assert.Empty(t, env.coordinator.Operations())
	})
}

func TestRetryFailedAndReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false, nil)

	fail := func(ctx context.Context, endpoint string, payload json.RawMessage) (*api.Response, error) {
		return &api.Response{Status: http.StatusBadGateway}, nil
	}
	env.transport.DeleteFunc = fail

	_, err := env.service.DeleteEntry(ctx, "3")
	require.NoError(t, err)
	env.conn.SetOnline(true)
	require.Len(t, env.coordinator.FailedOperations(), 1)

	env.conn.SetOnline(false)
	assert.Equal(t, 1, env.service.RetryFailed(ctx))
	assert.Len(t, env.coordinator.PendingOperations(), 1)

	env.strategy.Store().Set(ctx, pkgapi.StatsPath, api.Response{Status: http.StatusOK}, time.Minute)
	env.service.Reset(ctx)

	assert.Empty(t, env.coordinator.Operations())
	assert.Zero(t, env.queue.Len())
	assert.Zero(t, env.strategy.Store().Len())
}

func TestInvalidator(t *testing.T) {
	ctx := context.Background()
	store := cache.NewStore[api.Response](ctx, memory.New(), cache.StoreOptions{}, nil)
	strategy := cache.NewStrategy(store, nil)
	inv := NewInvalidator(strategy)

	seed := func() {
		for _, key := range []string{pkgapi.StatsPath, pkgapi.EntriesPath, pkgapi.HealthPath} {
			store.Set(ctx, key, api.Response{Status: http.StatusOK}, time.Minute)
		}
	}

	seed()
	inv.InvalidateEndpoint(ctx, "/api/v1/entries/5")
	assert.ElementsMatch(t, []string{pkgapi.HealthPath}, store.Keys())

	seed()
	inv.InvalidateEndpoint(ctx, "/api/v1/profile")
	assert.Len(t, store.Keys(), 3)
}
