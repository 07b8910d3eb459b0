package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/fitjournal/internal/client/api"
)

// ErrEmptyResponse is returned by WithCache when fetch reports neither a
// response nor an error
var ErrEmptyResponse = errors.New("fetch returned no response")

// FetchFunc loads a resource from the source of truth on a cache miss
type FetchFunc func(ctx context.Context) (*api.Response, error)

// Strategy implements cache-aside reads over a Store of API responses.
type Strategy struct {
	store  *Store[api.Response]
	group  singleflight.Group
	logger *slog.Logger
}

// NewStrategy creates a cache-aside strategy over store
func NewStrategy(store *Store[api.Response], logger *slog.Logger) *Strategy {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Strategy{store: store, logger: logger}
}

// ComputeKey derives a deterministic key from endpoint and params.
// Params are rendered in sorted key order, so {a:1,b:2} and {b:2,a:1} map
// to the same key. Without params the key is the endpoint itself.
func ComputeKey(endpoint string, params map[string]any) string {
	if len(params) == 0 {
		return endpoint
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		// encoding/json сортирует ключи вложенных map, поэтому значение тоже каноническое
		value, err := json.Marshal(params[name])
		if err != nil {
			value = []byte(fmt.Sprint(params[name]))
		}
		b.Write(value)
	}
	return b.String()
}

// Get returns the cached response for endpoint and params
func (s *Strategy) Get(ctx context.Context, endpoint string, params map[string]any) (*api.Response, bool) {
	resp, ok := s.store.Get(ctx, ComputeKey(endpoint, params))
	if !ok {
		return nil, false
	}
	return &resp, true
}

// Set caches resp for endpoint and params
func (s *Strategy) Set(ctx context.Context, endpoint string, params map[string]any, resp *api.Response, ttl time.Duration) {
	s.store.Set(ctx, ComputeKey(endpoint, params), *resp, ttl)
}

// WithCache returns the cached response or calls fetch and caches a
// successful result. Concurrent misses for the same key share one fetch.
// Errors from fetch are returned as is and nothing is cached.
func (s *Strategy) WithCache(ctx context.Context, endpoint string, fetch FetchFunc, params map[string]any, ttl time.Duration) (*api.Response, error) {
	key := ComputeKey(endpoint, params)

	if cached, ok := s.store.Get(ctx, key); ok {
		s.logger.Debug("cache hit", "key", key)
		return &cached, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		resp, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, ErrEmptyResponse
		}
		if resp.OK() {
			s.store.Set(ctx, key, *resp, ttl)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("cache miss", "key", key, "shared", shared)
	return v.(*api.Response), nil
}

// Invalidate removes the entry for endpoint and params
func (s *Strategy) Invalidate(ctx context.Context, endpoint string, params map[string]any) {
	s.store.Delete(ctx, ComputeKey(endpoint, params))
}

// InvalidateEndpoint removes every cached entry of endpoint, with or without
// params, and entries of its parent collection: a mutation of
// "/api/v1/entries/42" also drops "/api/v1/entries?date=...".
func (s *Strategy) InvalidateEndpoint(ctx context.Context, endpoint string) {
	prefixes := []string{endpoint}
	if i := strings.LastIndexByte(endpoint, '/'); i > 0 {
		prefixes = append(prefixes, endpoint[:i])
	}

	removed := s.store.DeleteFunc(ctx, func(key string) bool {
		path, _, _ := strings.Cut(key, "?")
		for _, prefix := range prefixes {
			if path == prefix {
				return true
			}
		}
		return false
	})
	s.logger.Debug("cache invalidated", "endpoint", endpoint, "removed", removed)
}

// InvalidateAll clears the whole cache
func (s *Strategy) InvalidateAll(ctx context.Context) {
	s.store.Clear(ctx)
}

// Store returns the underlying store, for stats reporting
func (s *Strategy) Store() *Store[api.Response] {
	return s.store
}
