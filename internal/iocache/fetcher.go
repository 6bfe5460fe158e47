package iocache

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// currentCacheVersion defines the version of the cached response encoding.
const currentCacheVersion = 1

// Loader produces the response body for a key on a cache miss.
type Loader func(ctx context.Context) ([]byte, error)

// Fetcher serves responses from a CacheStore and collapses concurrent loads
// of the same key into one call. Only successful loads are stored.
type Fetcher struct {
	store contract.CacheStore // nil disables storage, single-flight still applies
	ttl   time.Duration       // 0 disables storage
	group singleflight.Group
	now   func() time.Time

	hits     atomic.Int64
	misses   atomic.Int64
	calls    atomic.Int64
	executed atomic.Int64
}

// NewFetcher creates a Fetcher over store with the given time to live.
func NewFetcher(store contract.CacheStore, ttl time.Duration) *Fetcher {
	return &Fetcher{store: store, ttl: ttl, now: time.Now}
}

// NewManagedFetcher creates a Fetcher over the manager's response store.
func NewManagedFetcher(mgr contract.CacheManager, ttl time.Duration) *Fetcher {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetResponseStore()
	}
	return NewFetcher(store, ttl)
}

// Key builds the canonical cache key for an endpoint and its query parameters.
func Key(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

// Fetch returns the cached body for key, or runs load once for all concurrent
// callers of the same key. The load runs detached from any single caller's
// cancellation; each caller still stops waiting when its own ctx is done.
func (f *Fetcher) Fetch(ctx context.Context, key string, load Loader) ([]byte, error) {
	if data, ok := f.lookup(key); ok {
		f.hits.Add(1)
		logger.WithContext(ctx).Debug("cache hit", zap.String("key", key))
		return data, nil
	}
	f.misses.Add(1)
	f.calls.Add(1)

	loadCtx := context.WithoutCancel(ctx)
	ch := f.group.DoChan(key, func() (any, error) {
		f.executed.Add(1)
		data, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		f.save(key, data)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// Forget drops any in-flight call for key so the next Fetch starts a new load.
func (f *Fetcher) Forget(key string) {
	f.group.Forget(key)
}

// Clear drops every stored response.
func (f *Fetcher) Clear() error {
	if f.store == nil {
		return nil
	}
	return f.store.Clear()
}

// Status reports the store status together with the fetcher counters.
func (f *Fetcher) Status() (schema.CacheStatus, error) {
	status := schema.CacheStatus{Backend: schema.NoneBackend}
	if f.store != nil {
		var err error
		if status, err = f.store.GetStatus(); err != nil {
			return schema.CacheStatus{}, err
		}
	}
	status.Hits = f.hits.Load()
	status.Misses = f.misses.Load()
	status.Shared = max(f.calls.Load()-f.executed.Load(), 0)
	status.TTL = f.ttl
	return status, nil
}

// lookup returns a fresh entry for key when one exists.
func (f *Fetcher) lookup(key string) ([]byte, bool) {
	if f.store == nil || f.ttl <= 0 {
		return nil, false
	}
	data, version, ts, err := f.store.Get(key)
	if err != nil || version != currentCacheVersion {
		return nil, false
	}
	if f.now().Sub(time.Unix(0, ts)) > f.ttl {
		return nil, false
	}
	return data, true
}

// save stores a successful load. Storage errors only cost a future miss.
func (f *Fetcher) save(key string, data []byte) {
	if f.store == nil || f.ttl <= 0 {
		return
	}
	if err := f.store.Set(key, data, currentCacheVersion, f.now().UnixNano()); err != nil {
		logger.Get().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
