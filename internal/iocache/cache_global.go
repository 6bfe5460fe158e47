package iocache

import (
	"fmt"
	"sync"

	"github.com/huangsam/orderpulse/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// NewCacheStore creates the store for the given backend. The none backend has no store.
func NewCacheStore(backend schema.CacheBackend) (*MemoryStore, error) {
	switch backend {
	case schema.MemoryBackend, "":
		return NewMemoryStore(), nil
	case schema.NoneBackend:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", backend)
	}
}

// InitStores initializes the global cache manager with the response store.
func InitStores(backend schema.CacheBackend) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewCacheStore(backend)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize response caching: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		if store != nil {
			Manager.response = store
		}
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.response != nil {
			_ = Manager.response.Close()
		}
	})
}
