// Package cache implements the client read cache: a bounded, time-expiring
// key/value Store persisted to device-local storage, and the cache-aside
// Strategy used for reads against the journal API.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/fitjournal/internal/client/storage"
	"github.com/iudanet/fitjournal/internal/models"
)

const (
	// DefaultTTL is used when Set is called with a non-positive ttl
	DefaultTTL = 5 * time.Minute
	// DefaultMaxEntries bounds the number of entries held by a Store
	DefaultMaxEntries = 1000
	// SnapshotVersion tags the persisted snapshot. A snapshot with any other
	// tag is discarded on load.
	SnapshotVersion = "cache/v1"
)

// StoreOptions configures a Store. Zero values fall back to defaults.
type StoreOptions struct {
	// Now returns the current time; tests replace it with a fake clock
	Now        func() time.Time
	Namespace  string
	DefaultTTL time.Duration
	MaxEntries int
}

type snapshot[V any] struct {
	Version string                  `json:"version"`
	Entries []*models.CacheEntry[V] `json:"entries"`
}

// Store is a bounded key/value cache with per-entry expiry.
//
// When full, Set evicts the entry with the oldest CreatedAt (FIFO by
// insertion, not least-recently-used). Every mutation rewrites the whole
// snapshot in storage; storage failures are logged and the in-memory state
// stays authoritative.
type Store[V any] struct {
	blobs      storage.BlobStorage
	logger     *slog.Logger
	now        func() time.Time
	entries    map[string]*models.CacheEntry[V]
	namespace  string
	stats      models.CacheStats
	defaultTTL time.Duration
	maxEntries int
	mu         sync.Mutex
}

// NewStore creates a Store and restores the previously persisted snapshot.
func NewStore[V any](ctx context.Context, blobs storage.BlobStorage, opts StoreOptions, logger *slog.Logger) *Store[V] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.Namespace == "" {
		opts.Namespace = storage.NamespaceCache
	}

	s := &Store[V]{
		blobs:      blobs,
		logger:     logger,
		now:        opts.Now,
		entries:    make(map[string]*models.CacheEntry[V]),
		namespace:  opts.Namespace,
		defaultTTL: opts.DefaultTTL,
		maxEntries: opts.MaxEntries,
	}

	s.load(ctx)
	return s
}

// Set stores value under key for ttl (DefaultTTL when ttl <= 0).
func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}

	now := s.now()
	s.entries[key] = &models.CacheEntry[V]{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		SizeRank:  now,
	}

	s.persistLocked(ctx)
}

// Get returns the value stored under key if it has not expired.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookupLocked(ctx, key)
	if !ok {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

// Has reports whether an unexpired entry exists. It counts as an access
// exactly like Get.
func (s *Store[V]) Has(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.lookupLocked(ctx, key)
	return ok
}

// lookupLocked applies hit/miss/expiry accounting for one access
func (s *Store[V]) lookupLocked(ctx context.Context, key string) (*models.CacheEntry[V], bool) {
	entry, ok := s.entries[key]
	if !ok {
		s.stats.Misses++
		return nil, false
	}

	if entry.Expired(s.now()) {
		delete(s.entries, key)
		s.stats.Evictions++
		s.stats.Misses++
		s.persistLocked(ctx)
		return nil, false
	}

	s.stats.Hits++
	return entry, true
}

// Delete removes key. It reports whether the key was present.
func (s *Store[V]) Delete(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.persistLocked(ctx)
	return true
}

// DeleteFunc removes every key for which match returns true and persists
// once. It returns the number of removed entries.
func (s *Store[V]) DeleteFunc(ctx context.Context, match func(key string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.entries {
		if match(key) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.persistLocked(ctx)
	}
	return removed
}

// Clear removes all entries and resets the counters.
func (s *Store[V]) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*models.CacheEntry[V])
	s.stats = models.CacheStats{LastCleared: s.now()}
	s.persistLocked(ctx)
}

// SetTTL rebases the expiry of key to now+ttl. Returns false if key is
// absent or ttl is not positive; use Delete to drop an entry right away.
func (s *Store[V]) SetTTL(ctx context.Context, key string, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false
	}
	entry.ExpiresAt = s.now().Add(ttl)
	s.persistLocked(ctx)
	return true
}

// GetTTL returns the remaining lifetime of key. Returns false if key is absent.
// An expired but not yet collected entry reports zero.
func (s *Store[V]) GetTTL(ctx context.Context, key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return 0, false
	}
	return max(entry.ExpiresAt.Sub(s.now()), 0), true
}

// Keys returns the stored keys in sorted order, expired entries included.
func (s *Store[V]) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Stats returns a snapshot of the counters.
func (s *Store[V]) Stats() models.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	stats.Size = int64(len(s.entries))
	return stats
}

// HitRate returns hits / (hits + misses), or 0 before the first access.
func (s *Store[V]) HitRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.stats.Hits + s.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(s.stats.Hits) / float64(total)
}

func (s *Store[V]) evictOldestLocked() {
	var victim *models.CacheEntry[V]
	for _, entry := range s.entries {
		if victim == nil || entry.CreatedAt.Before(victim.CreatedAt) ||
			(entry.CreatedAt.Equal(victim.CreatedAt) && entry.Key < victim.Key) {
			victim = entry
		}
	}
	if victim == nil {
		return
	}

	delete(s.entries, victim.Key)
	s.stats.Evictions++
	s.logger.Debug("cache entry evicted", "key", victim.Key)
}

func (s *Store[V]) persistLocked(ctx context.Context) {
	snap := snapshot[V]{
		Version: SnapshotVersion,
		Entries: make([]*models.CacheEntry[V], 0, len(s.entries)),
	}
	for _, entry := range s.entries {
		snap.Entries = append(snap.Entries, entry)
	}
	// Стабильный порядок в снимке: по времени вставки
	sort.Slice(snap.Entries, func(i, j int) bool {
		return snap.Entries[i].CreatedAt.Before(snap.Entries[j].CreatedAt)
	})

	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("failed to marshal cache snapshot", "error", err)
		return
	}

	if err := s.blobs.WriteAll(ctx, s.namespace, data); err != nil {
		s.logger.Warn("failed to persist cache snapshot", "error", err)
	}
}

func (s *Store[V]) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.blobs.ReadAll(ctx, s.namespace)
	if err != nil {
		if !errors.Is(err, storage.ErrBlobNotFound) {
			s.logger.Warn("failed to read cache snapshot", "error", err)
		}
		return
	}

	var snap snapshot[V]
	if err := json.Unmarshal(data, &snap); err != nil || snap.Version != SnapshotVersion {
		// Без частичной миграции: несовместимый снимок отбрасывается целиком
		s.logger.Info("discarding incompatible cache snapshot",
			"version", snap.Version, "want", SnapshotVersion, "error", err)
		s.persistLocked(ctx)
		return
	}

	now := s.now()
	purged := 0
	for _, entry := range snap.Entries {
		if entry == nil || entry.Expired(now) {
			purged++
			continue
		}
		s.entries[entry.Key] = entry
	}
	for len(s.entries) > s.maxEntries {
		s.evictOldestLocked()
		purged++
	}

	s.logger.Debug("cache snapshot restored", "entries", len(s.entries), "purged", purged)

	if purged > 0 {
		s.persistLocked(ctx)
	}
}
