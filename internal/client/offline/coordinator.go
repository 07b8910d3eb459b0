// Package offline implements the offline coordinator: durable records of
// client writes that are replayed through the sync queue on reconnection.
package offline

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

	"github.com/iudanet/fitjournal/internal/client/queue"
	"github.com/iudanet/fitjournal/internal/client/storage"
	"github.com/iudanet/fitjournal/internal/models"
)

// snapshotVersion tags the persisted operation set
const snapshotVersion = "offline_operations/v1"

// SyncQueue is the part of queue.Queue the coordinator relies on
type SyncQueue interface {
	AddToQueue(ctx context.Context, m models.Mutation, opts queue.Options) (*models.SyncQueueItem, error)
	Send(ctx context.Context, m models.Mutation) (bool, error)
	Contains(id string) bool
	SetPaused(paused bool)
	AddSettledListener(l queue.SettledListener)
}

// Connectivity is the platform online/offline signal
type Connectivity interface {
	IsOnline() bool
	// Subscribe registers fn for online/offline transitions and returns
	// a function that removes the subscription
	Subscribe(fn func(online bool)) func()
}

// Config configures a Coordinator
type Config struct {
	// Now returns the current time; tests replace it with a fake clock
	Now func() time.Time
}

// Request describes one write for CreateBatchOperations
type Request struct {
	Payload  any
	Type     models.Method
	Endpoint string
}

// SyncResult summarizes one replay pass
type SyncResult struct {
	Attempted int // количество отправленных операций
	Synced    int // количество успешно синхронизированных (удаленных) операций
	Failed    int // количество операций, переведенных в FAILED
	Skipped   int // количество операций, которые еще доставляет очередь
}

type snapshot struct {
	Version    string                     `json:"version"`
	Operations []*models.OfflineOperation `json:"operations"`
}

// Coordinator keeps a durable set of OfflineOperations. While online new
// operations are delivered through the sync queue; pending operations left
// over from offline periods are replayed once per reconnection.
type Coordinator struct {
	queue       SyncQueue
	conn        Connectivity
	blobs       storage.BlobStorage
	metadata    storage.MetadataStorage
	logger      *slog.Logger
	cfg         Config
	unsubscribe func()
	ops         []*models.OfflineOperation
	mu          sync.Mutex
	syncing     atomic.Bool
}

// New creates a coordinator, restores the persisted operation set and
// subscribes to connectivity transitions. metadata may be nil.
func New(ctx context.Context, q SyncQueue, conn Connectivity, blobs storage.BlobStorage, metadata storage.MetadataStorage, cfg Config, logger *slog.Logger) *Coordinator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Coordinator{
		queue:    q,
		conn:     conn,
		blobs:    blobs,
		metadata: metadata,
		logger:   logger,
		cfg:      cfg,
	}

	c.load(ctx)

	q.AddSettledListener(c.onSettled)
	// Пока нет связи, очередь не тратит попытки впустую
	q.SetPaused(!conn.IsOnline())
	c.unsubscribe = conn.Subscribe(c.onConnectivity)

	return c
}

// Close unsubscribes from the connectivity signal
func (c *Coordinator) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// IsOffline reports whether the connectivity signal is offline
func (c *Coordinator) IsOffline() bool {
	return !c.conn.IsOnline()
}

// CreateOperation records a PENDING operation and persists the set. When
// online the operation is handed to the sync queue right away; otherwise it
// waits for the next reconnection.
func (c *Coordinator) CreateOperation(ctx context.Context, method models.Method, endpoint string, payload any) (*models.OfflineOperation, error) {
	op, err := c.record(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if c.conn.IsOnline() {
		c.enqueue(ctx, op)
	} else {
		c.logger.Info("offline, operation buffered",
			"operation_id", op.ID,
			"type", op.Type,
			"endpoint", op.Endpoint)
	}

	return c.operation(op.ID, op), nil
}

// CreateBatchOperations creates operations sequentially and, if online,
// runs a sync pass afterwards. Invalid requests are rejected before anything
// is recorded.
func (c *Coordinator) CreateBatchOperations(ctx context.Context, reqs []Request) ([]*models.OfflineOperation, error) {
	for i, req := range reqs {
		if _, err := models.NewMutation(req.Type, req.Endpoint, req.Payload); err != nil {
			return nil, fmt.Errorf("batch request %d: %w", i, err)
		}
	}

	ops := make([]*models.OfflineOperation, 0, len(reqs))
	for _, req := range reqs {
		op, err := c.CreateOperation(ctx, req.Type, req.Endpoint, req.Payload)
		if err != nil {
			return ops, err
		}
		ops = append(ops, op)
	}

	if c.conn.IsOnline() {
		c.Sync(ctx)
	}

	return ops, nil
}

// HandleOnline is called on the transition to online: the queue resumes and
// every pending operation not already owned by the queue gets one delivery
// attempt.
func (c *Coordinator) HandleOnline(ctx context.Context) SyncResult {
	c.logger.Info("connectivity restored")
	c.queue.SetPaused(false)
	return c.Sync(ctx)
}

// HandleOffline is called on the transition to offline. Operations keep
// their state; the queue stops draining until the connection is back.
func (c *Coordinator) HandleOffline() {
	c.logger.Info("connectivity lost, buffering operations")
	c.queue.SetPaused(true)
}

// Sync makes one delivery attempt for every PENDING operation that is not
// linked to a live queue item. Success deletes the operation, failure marks
// it FAILED. A pass started while another one runs returns at once.
func (c *Coordinator) Sync(ctx context.Context) SyncResult {
	var result SyncResult

	if !c.syncing.CompareAndSwap(false, true) {
		c.logger.Debug("sync pass already in progress")
		return result
	}
	defer c.syncing.Store(false)

	for _, op := range c.PendingOperations() {
		if op.QueueItemID != "" && c.queue.Contains(op.QueueItemID) {
			result.Skipped++
			continue
		}

		result.Attempted++
		ok, err := c.queue.Send(ctx, op.Mutation())
		if ok {
			if c.remove(ctx, op.ID) {
				result.Synced++
			}
			continue
		}
		if ctx.Err() != nil {
			// Остановка клиента: операция остается PENDING до следующего прохода
			c.logger.Debug("sync pass interrupted", "operation_id", op.ID, "error", ctx.Err())
			break
		}

		c.logger.Warn("operation replay failed",
			"operation_id", op.ID,
			"endpoint", op.Endpoint,
			"error", err)
		if c.markFailed(ctx, op.ID, errorText(err)) {
			result.Failed++
		}
	}

	if c.metadata != nil && result.Attempted > 0 {
		if err := c.metadata.SaveLastSyncTimestamp(ctx, c.cfg.Now().Unix()); err != nil {
			c.logger.Warn("failed to save last sync timestamp", "error", err)
		}
	}

	c.logger.Info("sync pass finished",
		"attempted", result.Attempted,
		"synced", result.Synced,
		"failed", result.Failed,
		"skipped", result.Skipped)

	return result
}

// RetryFailed moves every FAILED operation back to PENDING and, if online,
// runs a sync pass. Returns the number of operations reset.
func (c *Coordinator) RetryFailed(ctx context.Context) int {
	c.mu.Lock()
	n := 0
	for _, op := range c.ops {
		if op.Status == models.OperationFailed {
			op.Status = models.OperationPending
			op.LastError = ""
			op.QueueItemID = ""
			n++
		}
	}
	if n > 0 {
		c.persistLocked(ctx)
	}
	c.mu.Unlock()

	c.logger.Info("failed operations reset to pending", "count", n)

	if n > 0 && c.conn.IsOnline() {
		c.Sync(ctx)
	}
	return n
}

// Operation returns a copy of the operation with the given id
func (c *Coordinator) Operation(id string) (*models.OfflineOperation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, id)
	}
	return c.ops[idx].Clone(), nil
}

// Operations returns copies of all operations in creation order
func (c *Coordinator) Operations() []*models.OfflineOperation {
	return c.filter(func(*models.OfflineOperation) bool { return true })
}

// PendingOperations returns copies of the PENDING operations
func (c *Coordinator) PendingOperations() []*models.OfflineOperation {
	return c.filter(func(op *models.OfflineOperation) bool {
		return op.Status == models.OperationPending
	})
}

// FailedOperations returns copies of the FAILED operations
func (c *Coordinator) FailedOperations() []*models.OfflineOperation {
	return c.filter(func(op *models.OfflineOperation) bool {
		return op.Status == models.OperationFailed
	})
}

// ClearOperations drops every operation and persists the empty set
func (c *Coordinator) ClearOperations(ctx context.Context) {
	c.mu.Lock()
	c.ops = nil
	c.persistLocked(ctx)
	c.mu.Unlock()

	c.logger.Info("offline operations cleared")
}

func (c *Coordinator) onConnectivity(online bool) {
	if online {
		c.HandleOnline(context.Background())
		return
	}
	c.HandleOffline()
}

// onSettled keeps the operation in agreement with its queue item: a
// delivered item deletes the operation, an exhausted one marks it FAILED.
func (c *Coordinator) onSettled(s queue.Settlement) {
	if s.Item == nil || s.Item.OperationID == "" {
		return
	}

	ctx := context.Background()
	switch s.Outcome {
	case queue.OutcomeCompleted:
		if c.remove(ctx, s.Item.OperationID) {
			c.logger.Debug("operation synced", "operation_id", s.Item.OperationID)
		}
	case queue.OutcomeFailed:
		if c.markFailed(ctx, s.Item.OperationID, s.LastError) {
			c.logger.Warn("operation failed after retries",
				"operation_id", s.Item.OperationID,
				"error", s.LastError)
		}
	}
}

func (c *Coordinator) record(ctx context.Context, method models.Method, endpoint string, payload any) (*models.OfflineOperation, error) {
	m, err := models.NewMutation(method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	op := &models.OfflineOperation{
		ID:         uuid.NewString(),
		Type:       m.Method,
		Endpoint:   m.Endpoint,
		Payload:    m.Payload,
		EnqueuedAt: c.cfg.Now(),
		Status:     models.OperationPending,
	}

	c.mu.Lock()
	c.ops = append(c.ops, op)
	c.persistLocked(ctx)
	result := op.Clone()
	c.mu.Unlock()

	return result, nil
}

func (c *Coordinator) enqueue(ctx context.Context, op *models.OfflineOperation) {
	item, err := c.queue.AddToQueue(ctx, op.Mutation(), queue.Options{OperationID: op.ID})
	if err != nil {
		// Операция остается PENDING и будет отправлена при следующем проходе
		c.logger.Error("failed to enqueue operation", "operation_id", op.ID, "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Очередь могла уже доставить элемент и удалить операцию
	if idx := c.indexLocked(op.ID); idx >= 0 && c.ops[idx].Status == models.OperationPending {
		c.ops[idx].QueueItemID = item.ID
		c.persistLocked(ctx)
	}
}

// operation returns the current copy of the operation, or fallback if it
// was already synced and removed
func (c *Coordinator) operation(id string, fallback *models.OfflineOperation) *models.OfflineOperation {
	op, err := c.Operation(id)
	if err != nil {
		return fallback
	}
	return op
}

func (c *Coordinator) remove(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return false
	}
	c.ops = slices.Delete(c.ops, idx, idx+1)
	c.persistLocked(ctx)
	return true
}

func (c *Coordinator) markFailed(ctx context.Context, id, reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return false
	}
	op := c.ops[idx]
	op.Status = models.OperationFailed
	op.LastError = reason
	op.QueueItemID = ""
	c.persistLocked(ctx)
	return true
}

func (c *Coordinator) filter(keep func(*models.OfflineOperation) bool) []*models.OfflineOperation {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*models.OfflineOperation, 0, len(c.ops))
	for _, op := range c.ops {
		if keep(op) {
			result = append(result, op.Clone())
		}
	}
	return result
}

func (c *Coordinator) indexLocked(id string) int {
	return slices.IndexFunc(c.ops, func(op *models.OfflineOperation) bool {
		return op.ID == id
	})
}

func (c *Coordinator) persistLocked(ctx context.Context) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Operations: c.ops})
	if err != nil {
		c.logger.Error("failed to marshal offline operations", "error", err)
		return
	}
	if err := c.blobs.WriteAll(ctx, storage.NamespaceOperations, data); err != nil {
		c.logger.Warn("failed to persist offline operations", "error", err)
	}
}

func (c *Coordinator) load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.blobs.ReadAll(ctx, storage.NamespaceOperations)
	if err != nil {
		if !errors.Is(err, storage.ErrBlobNotFound) {
			c.logger.Warn("failed to read offline operations", "error", err)
		}
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Version != snapshotVersion {
		c.logger.Warn("discarding incompatible offline operations snapshot", "version", snap.Version, "error", err)
		return
	}

	for _, op := range snap.Operations {
		if op == nil || op.Mutation().Validate() != nil {
			continue
		}
		// SYNCED операции не хранятся; такая запись означает, что удаление не успело сохраниться
		if op.Status == models.OperationSynced {
			continue
		}
		c.ops = append(c.ops, op)
	}

	if len(c.ops) > 0 {
		c.logger.Info("offline operations restored", "count", len(c.ops))
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
