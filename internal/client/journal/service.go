// Package journal is the application facade of the fitness journal client:
// writes go through the offline coordinator, reads through the cache-aside
// strategy.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fitjournal/internal/client/api"
	"github.com/iudanet/fitjournal/internal/client/cache"
	"github.com/iudanet/fitjournal/internal/client/offline"
	"github.com/iudanet/fitjournal/internal/client/queue"
	"github.com/iudanet/fitjournal/internal/client/storage"
	"github.com/iudanet/fitjournal/internal/models"
	"github.com/iudanet/fitjournal/internal/validation"
	pkgapi "github.com/iudanet/fitjournal/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out reader_mock.go . Reader

// Service определяет интерфейс журнала тренировок
type Service interface {
	// LogExercise записывает количество повторений упражнения за день
	LogExercise(ctx context.Context, exercise string, count int, date string) (*WriteResult, error)
	// UpdateEntry меняет количество повторений в записи
	UpdateEntry(ctx context.Context, id string, count int) (*WriteResult, error)
	// DeleteEntry удаляет запись
	DeleteEntry(ctx context.Context, id string) (*WriteResult, error)

	// ListEntries возвращает записи журнала, читая через кэш
	ListEntries(ctx context.Context, filter ListFilter) ([]pkgapi.Entry, error)
	// Stats возвращает XP, уровень и серии, читая через кэш
	Stats(ctx context.Context) (*pkgapi.Stats, error)

	// Status возвращает состояние очереди, операций и кэша
	Status(ctx context.Context) (*Status, error)
	// Sync повторяет отложенные операции и обрабатывает очередь
	Sync(ctx context.Context) (*SyncReport, error)
	// RetryFailed возвращает FAILED операции в PENDING
	RetryFailed(ctx context.Context) int
	// Reset очищает очередь, операции и кэш
	Reset(ctx context.Context)
}

// Reader читает ресурсы с сервера
type Reader interface {
	Get(ctx context.Context, endpoint string, params map[string]any) (*api.Response, error)
}

// WriteResult результат принятой записи
type WriteResult struct {
	Operation *models.OfflineOperation
	EntryID   string
}

// ListFilter фильтр списка записей; пустые поля не передаются серверу
type ListFilter struct {
	Exercise string
	From     string // YYYY-MM-DD включительно
	To       string // YYYY-MM-DD включительно
}

// Status состояние клиентского слоя устойчивости
type Status struct {
	LastSync time.Time // zero, если отложенные операции еще не отправлялись
	Pending  []*models.OfflineOperation
	Failed   []*models.OfflineOperation
	Queued   []*models.SyncQueueItem
	Cache    models.CacheStats
	Progress models.SyncProgress
	HitRate  float64
	Offline  bool
}

// SyncReport результат ручной синхронизации
type SyncReport struct {
	Replay offline.SyncResult
	Drain  queue.DrainResult
}

// Options настройки сервиса
type Options struct {
	Now      func() time.Time
	CacheTTL time.Duration // TTL списка записей, 0 - TTL кэша по умолчанию
	StatsTTL time.Duration // TTL статистики, 0 - TTL кэша по умолчанию
}

type service struct {
	coordinator *offline.Coordinator
	queue       *queue.Queue
	strategy    *cache.Strategy
	reader      Reader
	metadata    storage.MetadataStorage
	logger      *slog.Logger
	opts        Options
}

// NewService creates the journal service
func NewService(coordinator *offline.Coordinator, q *queue.Queue, strategy *cache.Strategy, reader Reader, metadata storage.MetadataStorage, opts Options, logger *slog.Logger) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		coordinator: coordinator,
		queue:       q,
		strategy:    strategy,
		reader:      reader,
		metadata:    metadata,
		opts:        opts,
		logger:      logger,
	}
}

// LogExercise validates the input and records a CREATE operation. The entry
// id is assigned on the client so the write can be replayed safely.
func (s *service) LogExercise(ctx context.Context, exercise string, count int, date string) (*WriteResult, error) {
	if err := validation.ValidateExercise(exercise); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateCount(count); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	day, err := validation.ParseDate(date, s.opts.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	req := pkgapi.LogEntryRequest{
		ID:       uuid.NewString(),
		Exercise: validation.NormalizeExercise(exercise),
		Date:     day,
		Count:    count,
	}

	op, err := s.coordinator.CreateOperation(ctx, models.MethodCreate, pkgapi.EntriesPath, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	s.logger.Info("exercise logged",
		"entry_id", req.ID,
		"exercise", req.Exercise,
		"count", req.Count,
		"date", req.Date)

	return &WriteResult{EntryID: req.ID, Operation: op}, nil
}

// UpdateEntry records an UPDATE operation for the entry
func (s *service) UpdateEntry(ctx context.Context, id string, count int) (*WriteResult, error) {
	if err := validation.ValidateEntryID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateCount(count); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	op, err := s.coordinator.CreateOperation(ctx, models.MethodUpdate, entryPath(id), pkgapi.UpdateEntryRequest{Count: count})
	if err != nil {
		return nil, fmt.Errorf("failed to record update: %w", err)
	}
	return &WriteResult{EntryID: id, Operation: op}, nil
}

// DeleteEntry records a DELETE operation for the entry
func (s *service) DeleteEntry(ctx context.Context, id string) (*WriteResult, error) {
	if err := validation.ValidateEntryID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	op, err := s.coordinator.CreateOperation(ctx, models.MethodDelete, entryPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to record delete: %w", err)
	}
	return &WriteResult{EntryID: id, Operation: op}, nil
}

// ListEntries reads entries through the cache
func (s *service) ListEntries(ctx context.Context, filter ListFilter) ([]pkgapi.Entry, error) {
	params := map[string]any{}
	if filter.Exercise != "" {
		params["exercise"] = validation.NormalizeExercise(filter.Exercise)
	}
	if filter.From != "" {
		params["from"] = filter.From
	}
	if filter.To != "" {
		params["to"] = filter.To
	}

	var entries []pkgapi.Entry
	if err := s.read(ctx, pkgapi.EntriesPath, params, s.opts.CacheTTL, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Stats reads the server-computed stats through the cache
func (s *service) Stats(ctx context.Context) (*pkgapi.Stats, error) {
	var stats pkgapi.Stats
	if err := s.read(ctx, pkgapi.StatsPath, nil, s.opts.StatsTTL, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Status collects the state of the queue, the operations and the cache
func (s *service) Status(ctx context.Context) (*Status, error) {
	store := s.strategy.Store()
	status := &Status{
		Offline:  s.coordinator.IsOffline(),
		Pending:  s.coordinator.PendingOperations(),
		Failed:   s.coordinator.FailedOperations(),
		Queued:   s.queue.Items(),
		Progress: s.queue.Progress(),
		Cache:    store.Stats(),
		HitRate:  store.HitRate(),
	}

	if s.metadata != nil {
		ts, err := s.metadata.GetLastSyncTimestamp(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get last sync timestamp: %w", err)
		}
		if ts > 0 {
			status.LastSync = time.Unix(ts, 0)
		}
	}

	return status, nil
}

// Sync replays pending operations and drains the queue once
func (s *service) Sync(ctx context.Context) (*SyncReport, error) {
	if s.coordinator.IsOffline() {
		return nil, ErrOffline
	}

	report := &SyncReport{
		Replay: s.coordinator.Sync(ctx),
		Drain:  s.queue.Drain(ctx),
	}
	return report, nil
}

// RetryFailed moves FAILED operations back to PENDING
func (s *service) RetryFailed(ctx context.Context) int {
	return s.coordinator.RetryFailed(ctx)
}

// Reset drops queued writes, offline operations and cached reads
func (s *service) Reset(ctx context.Context) {
	s.queue.ClearQueue(ctx)
	s.coordinator.ClearOperations(ctx)
	s.strategy.InvalidateAll(ctx)
	s.logger.Info("client state reset")
}

func (s *service) read(ctx context.Context, endpoint string, params map[string]any, ttl time.Duration, dst any) error {
	fetch := func(ctx context.Context) (*api.Response, error) {
		if s.coordinator.IsOffline() {
			return nil, ErrOffline
		}
		return s.reader.Get(ctx, endpoint, params)
	}

	resp, err := s.strategy.WithCache(ctx, endpoint, fetch, params, ttl)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", endpoint, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: %s: status %d: %s", ErrRequestFailed, endpoint, resp.Status, resp.ErrorMessage())
	}

	if err := json.Unmarshal(resp.Data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	return nil
}

func entryPath(id string) string {
	return pkgapi.EntriesPath + "/" + id
}

// Invalidator drops cached reads after a successful write. Any change to
// entries also invalidates stats, since XP and streaks are derived from them.
type Invalidator struct {
	strategy *cache.Strategy
}

// NewInvalidator creates an invalidator for the sync queue
func NewInvalidator(strategy *cache.Strategy) *Invalidator {
	return &Invalidator{strategy: strategy}
}

// InvalidateEndpoint implements queue.Invalidator
func (i *Invalidator) InvalidateEndpoint(ctx context.Context, endpoint string) {
	i.strategy.InvalidateEndpoint(ctx, endpoint)
	if endpoint == pkgapi.EntriesPath || strings.HasPrefix(endpoint, pkgapi.EntriesPath+"/") {
		i.strategy.InvalidateEndpoint(ctx, pkgapi.StatsPath)
	}
}
