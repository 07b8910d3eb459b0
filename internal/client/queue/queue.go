// Package queue implements the sync queue: a persisted, priority-ordered
// queue of remote mutations drained in batches with bounded retries.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fitjournal/internal/client/api"
	"github.com/iudanet/fitjournal/internal/client/storage"
	"github.com/iudanet/fitjournal/internal/models"
)

//go:generate moq -out transport_mock.go . Transport

// Transport performs mutations against the remote API
type Transport interface {
	Create(ctx context.Context, endpoint string, payload json.RawMessage) (*api.Response, error)
	Update(ctx context.Context, endpoint string, payload json.RawMessage) (*api.Response, error)
	Delete(ctx context.Context, endpoint string, payload json.RawMessage) (*api.Response, error)
}

// Invalidator drops cached reads of an endpoint after a successful mutation
type Invalidator interface {
	InvalidateEndpoint(ctx context.Context, endpoint string)
}

var errEmptyResponse = errors.New("empty response from transport")

// snapshotVersion tags the persisted queue; other versions are discarded on load
const snapshotVersion = "sync_queue/v1"

// Config configures a Queue
type Config struct {
	// Now returns the current time; tests replace it with a fake clock
	Now           func() time.Time
	DrainInterval time.Duration
	BatchSize     int
	MaxRetries    int
}

// DefaultConfig returns default queue configuration
func DefaultConfig() Config {
	return Config{
		Now:           time.Now,
		DrainInterval: 5 * time.Second,
		BatchSize:     10,
		MaxRetries:    3,
	}
}

// Options are per-item enqueue options
type Options struct {
	Priority     models.Priority
	ConflictHint models.ConflictHint
	BatchID      string
	// OperationID links the item to an offline operation
	OperationID string
}

// BatchItem is one element of AddBatch
type BatchItem struct {
	Priority     models.Priority
	ConflictHint models.ConflictHint
	Mutation     models.Mutation
}

// DrainResult summarizes one drain pass
type DrainResult struct {
	Attempted int
	Completed int
	Retried   int
	Failed    int
}

// ListenerID identifies a registered progress listener
type ListenerID uint64

// ProgressListener receives progress after every change
type ProgressListener func(models.SyncProgress)

// Outcome is how an item left the queue
type Outcome int

const (
	// OutcomeCompleted the mutation got a 2xx response
	OutcomeCompleted Outcome = iota
	// OutcomeFailed the mutation exhausted its retries
	OutcomeFailed

	outcomeRetry
	outcomeGone
)

// Settlement describes an item that left the queue
type Settlement struct {
	Item      *models.SyncQueueItem
	LastError string
	Outcome   Outcome
}

// SettledListener is notified when an item leaves the queue
type SettledListener func(Settlement)

type snapshot struct {
	Version string                  `json:"version"`
	Items   []*models.SyncQueueItem `json:"items"`
}

// Queue holds pending mutations and dispatches them in (priority, enqueue
// time) order. At most one drain runs at a time.
type Queue struct {
	transport   Transport
	invalidator Invalidator
	blobs       storage.BlobStorage
	logger      *slog.Logger
	listeners   map[ListenerID]ProgressListener
	kick        chan struct{}
	items       []*models.SyncQueueItem
	settled     []SettledListener
	progress    models.SyncProgress
	cfg         Config
	seq         uint64
	nextID      ListenerID
	mu          sync.Mutex
	draining    atomic.Bool
	paused      atomic.Bool
}

// New creates a queue and restores items persisted by a previous process
func New(ctx context.Context, transport Transport, invalidator Invalidator, blobs storage.BlobStorage, cfg Config, logger *slog.Logger) *Queue {
	def := DefaultConfig()
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.DrainInterval <= 0 {
		cfg.DrainInterval = def.DrainInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	q := &Queue{
		transport:   transport,
		invalidator: invalidator,
		blobs:       blobs,
		logger:      logger,
		listeners:   make(map[ListenerID]ProgressListener),
		kick:        make(chan struct{}, 1),
		cfg:         cfg,
	}

	q.load(ctx)
	return q
}

// AddToQueue enqueues a mutation and returns without waiting for delivery.
func (q *Queue) AddToQueue(ctx context.Context, m models.Mutation, opts Options) (*models.SyncQueueItem, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if opts.Priority == "" {
		opts.Priority = models.PriorityNormal
	}

	q.mu.Lock()
	q.seq++
	now := q.cfg.Now()
	item := &models.SyncQueueItem{
		ID:           models.NewSyncQueueItemID(m, now, q.seq),
		Mutation:     m,
		EnqueuedAt:   now,
		Priority:     opts.Priority,
		ConflictHint: opts.ConflictHint,
		BatchID:      opts.BatchID,
		OperationID:  opts.OperationID,
		Seq:          q.seq,
	}
	q.items = append(q.items, item)
	q.progress.Total++
	q.persistLocked(ctx)
	progress := q.progress
	result := item.Clone()
	q.mu.Unlock()

	q.logger.Debug("mutation queued",
		"item_id", item.ID,
		"method", m.Method,
		"endpoint", m.Endpoint,
		"priority", item.Priority)

	q.notifyProgress(progress)
	q.Kick()

	return result, nil
}

// AddBatch enqueues items under one shared batch id and returns it.
// Nothing is enqueued if any mutation is invalid.
func (q *Queue) AddBatch(ctx context.Context, items []BatchItem) (string, error) {
	for i, item := range items {
		if err := item.Mutation.Validate(); err != nil {
			return "", fmt.Errorf("batch item %d: %w", i, err)
		}
	}

	batchID := uuid.NewString()
	for _, item := range items {
		if _, err := q.AddToQueue(ctx, item.Mutation, Options{
			Priority:     item.Priority,
			ConflictHint: item.ConflictHint,
			BatchID:      batchID,
		}); err != nil {
			return batchID, err
		}
	}

	return batchID, nil
}

// Kick asks the Run loop for a drain without blocking
func (q *Queue) Kick() {
	select {
	case q.kick <- struct{}{}:
	default:
	}
}

// SetPaused stops (true) or resumes (false) draining. Enqueueing still works
// while paused.
func (q *Queue) SetPaused(paused bool) {
	q.paused.Store(paused)
	if !paused {
		q.Kick()
	}
}

// Paused reports whether draining is paused
func (q *Queue) Paused() bool {
	return q.paused.Load()
}

// Run drains the queue every DrainInterval and whenever Kick is called,
// until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	ticker := time.NewTicker(q.cfg.DrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-q.kick:
		}
		q.Drain(ctx)
	}
}

// Drain performs one pass over the queued items. A call made while another
// drain is in flight, or while paused, returns immediately.
func (q *Queue) Drain(ctx context.Context) DrainResult {
	var result DrainResult

	if q.paused.Load() {
		return result
	}
	if !q.draining.CompareAndSwap(false, true) {
		q.logger.Debug("drain already in progress")
		return result
	}
	defer q.draining.Store(false)

	pending := q.sortedItems()
	if len(pending) == 0 {
		return result
	}

	q.logger.Debug("drain started", "items", len(pending))

	for batch := range slices.Chunk(pending, q.cfg.BatchSize) {
		for _, item := range batch {
			if ctx.Err() != nil || q.paused.Load() {
				q.finishDrain(result)
				return result
			}
			q.setCurrentBatch(item.BatchID)

			result.Attempted++
			ok, reason := q.attempt(ctx, item.Mutation)
			if ok {
				if q.complete(ctx, item.ID) {
					result.Completed++
				}
				continue
			}
			// Отмена контекста (остановка клиента) не считается попыткой:
			// элемент остается в очереди с прежним RetryCount
			if ctx.Err() != nil {
				q.logger.Debug("drain interrupted", "item_id", item.ID, "error", ctx.Err())
				q.finishDrain(result)
				return result
			}

			switch q.fail(ctx, item.ID, reason) {
			case OutcomeFailed:
				result.Failed++
			case outcomeRetry:
				result.Retried++
			}
		}
	}

	q.finishDrain(result)
	return result
}

func (q *Queue) finishDrain(result DrainResult) {
	q.setCurrentBatch("")
	q.logger.Info("drain finished",
		"attempted", result.Attempted,
		"completed", result.Completed,
		"retried", result.Retried,
		"failed", result.Failed)
}

// Send makes a single delivery attempt without queueing. On success the
// endpoint's cached reads are invalidated, exactly as for queued items.
func (q *Queue) Send(ctx context.Context, m models.Mutation) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	ok, reason := q.attempt(ctx, m)
	if !ok {
		return false, errors.New(reason)
	}
	return true, nil
}

// attempt dispatches m and reports success; on failure it returns the reason
func (q *Queue) attempt(ctx context.Context, m models.Mutation) (bool, string) {
	resp, err := q.dispatch(ctx, m)
	if err == nil && resp == nil {
		err = errEmptyResponse
	}
	if err != nil {
		q.logger.Warn("mutation dispatch failed",
			"method", m.Method,
			"endpoint", m.Endpoint,
			"error", err)
		return false, err.Error()
	}
	if !resp.OK() {
		q.logger.Warn("mutation rejected",
			"method", m.Method,
			"endpoint", m.Endpoint,
			"status", resp.Status)
		return false, fmt.Sprintf("status %d: %s", resp.Status, resp.ErrorMessage())
	}

	if q.invalidator != nil {
		q.invalidator.InvalidateEndpoint(ctx, m.Endpoint)
	}
	return true, ""
}

func (q *Queue) dispatch(ctx context.Context, m models.Mutation) (*api.Response, error) {
	switch m.Method {
	case models.MethodCreate:
		return q.transport.Create(ctx, m.Endpoint, m.Payload)
	case models.MethodUpdate:
		return q.transport.Update(ctx, m.Endpoint, m.Payload)
	case models.MethodDelete:
		return q.transport.Delete(ctx, m.Endpoint, m.Payload)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", models.ErrInvalidMutation, m.Method)
	}
}

// complete removes a delivered item. Returns false if the item is gone
// already (the queue was cleared during dispatch).
func (q *Queue) complete(ctx context.Context, id string) bool {
	q.mu.Lock()
	item, ok := q.removeLocked(id)
	if !ok {
		q.mu.Unlock()
		return false
	}
	q.progress.Completed++
	q.persistLocked(ctx)
	progress := q.progress
	q.mu.Unlock()

	q.logger.Debug("mutation delivered", "item_id", id)

	q.notifyProgress(progress)
	q.notifySettled(Settlement{Item: item, Outcome: OutcomeCompleted})
	return true
}

// fail applies the retry policy to a failed item
func (q *Queue) fail(ctx context.Context, id, reason string) Outcome {
	q.mu.Lock()
	idx := q.indexLocked(id)
	if idx < 0 {
		q.mu.Unlock()
		return outcomeGone
	}

	item := q.items[idx]
	if item.RetryCount < q.cfg.MaxRetries {
		item.RetryCount++
		q.persistLocked(ctx)
		retries := item.RetryCount
		q.mu.Unlock()

		q.logger.Debug("mutation will be retried", "item_id", id, "retry_count", retries)
		return outcomeRetry
	}

	removed, _ := q.removeLocked(id)
	q.progress.Failed++
	q.persistLocked(ctx)
	progress := q.progress
	q.mu.Unlock()

	q.logger.Error("mutation dropped after retries",
		"item_id", id,
		"endpoint", removed.Mutation.Endpoint,
		"retry_count", removed.RetryCount,
		"error", reason)

	q.notifyProgress(progress)
	q.notifySettled(Settlement{Item: removed, Outcome: OutcomeFailed, LastError: reason})
	return OutcomeFailed
}

// ClearQueue drops every queued item and resets progress
func (q *Queue) ClearQueue(ctx context.Context) {
	q.mu.Lock()
	q.items = nil
	q.progress = models.SyncProgress{}
	q.persistLocked(ctx)
	q.mu.Unlock()

	q.logger.Info("sync queue cleared")
	q.notifyProgress(models.SyncProgress{})
}

// Items returns copies of the queued items in dispatch order
func (q *Queue) Items() []*models.SyncQueueItem {
	return q.sortedItems()
}

// Contains reports whether the item is still queued
func (q *Queue) Contains(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.indexLocked(id) >= 0
}

// Len returns the number of queued items
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Progress returns the aggregate counters
func (q *Queue) Progress() models.SyncProgress {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.progress
}

// AddProgressListener registers l and returns an id for RemoveProgressListener
func (q *Queue) AddProgressListener(l ProgressListener) ListenerID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.listeners[q.nextID] = l
	return q.nextID
}

// RemoveProgressListener unregisters a listener
func (q *Queue) RemoveProgressListener(id ListenerID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.listeners, id)
}

// AddSettledListener registers l to be called whenever an item leaves the
// queue as completed or permanently failed
func (q *Queue) AddSettledListener(l SettledListener) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.settled = append(q.settled, l)
}

func (q *Queue) setCurrentBatch(batchID string) {
	q.mu.Lock()
	if q.progress.CurrentBatchID == batchID {
		q.mu.Unlock()
		return
	}
	q.progress.CurrentBatchID = batchID
	progress := q.progress
	q.mu.Unlock()

	q.notifyProgress(progress)
}

func (q *Queue) notifyProgress(p models.SyncProgress) {
	q.mu.Lock()
	listeners := make([]ProgressListener, 0, len(q.listeners))
	for _, l := range q.listeners {
		listeners = append(listeners, l)
	}
	q.mu.Unlock()

	for _, l := range listeners {
		l(p)
	}
}

func (q *Queue) notifySettled(s Settlement) {
	q.mu.Lock()
	listeners := slices.Clone(q.settled)
	q.mu.Unlock()

	for _, l := range listeners {
		l(s)
	}
}

func (q *Queue) sortedItems() []*models.SyncQueueItem {
	q.mu.Lock()
	items := make([]*models.SyncQueueItem, 0, len(q.items))
	for _, item := range q.items {
		items = append(items, item.Clone())
	}
	q.mu.Unlock()

	slices.SortStableFunc(items, func(a, b *models.SyncQueueItem) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return items
}

func (q *Queue) indexLocked(id string) int {
	return slices.IndexFunc(q.items, func(item *models.SyncQueueItem) bool {
		return item.ID == id
	})
}

func (q *Queue) removeLocked(id string) (*models.SyncQueueItem, bool) {
	idx := q.indexLocked(id)
	if idx < 0 {
		return nil, false
	}
	item := q.items[idx]
	q.items = slices.Delete(q.items, idx, idx+1)
	return item, true
}

func (q *Queue) persistLocked(ctx context.Context) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Items: q.items})
	if err != nil {
		q.logger.Error("failed to marshal sync queue", "error", err)
		return
	}
	if err := q.blobs.WriteAll(ctx, storage.NamespaceSyncQueue, data); err != nil {
		q.logger.Warn("failed to persist sync queue", "error", err)
	}
}

func (q *Queue) load(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, err := q.blobs.ReadAll(ctx, storage.NamespaceSyncQueue)
	if err != nil {
		if !errors.Is(err, storage.ErrBlobNotFound) {
			q.logger.Warn("failed to read sync queue", "error", err)
		}
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Version != snapshotVersion {
		q.logger.Warn("discarding incompatible sync queue snapshot", "version", snap.Version, "error", err)
		return
	}

	for _, item := range snap.Items {
		if item == nil || item.Mutation.Validate() != nil {
			continue
		}
		q.items = append(q.items, item)
		q.seq = max(q.seq, item.Seq)
	}
	q.progress.Total = len(q.items)

	if len(q.items) > 0 {
		q.logger.Info("sync queue restored", "items", len(q.items))
	}
}
