// Package iocache is for caching I/O calls to the analytics service.
package iocache

import (
	"sync"

	"github.com/huangsam/orderpulse/internal/contract"
)

// CacheStoreManager manages the response CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	response     contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetResponseStore returns the response CacheStore, or nil when caching is disabled.
func (mgr *CacheStoreManager) GetResponseStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.response
}
