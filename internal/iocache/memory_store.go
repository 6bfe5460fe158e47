package iocache

import (
	"errors"
	"sync"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
)

// ErrCacheMiss is returned by Get when the key has no entry.
var ErrCacheMiss = errors.New("cache miss")

type memoryEntry struct {
	value     []byte
	version   int
	timestamp int64
}

// MemoryStore is a process-local CacheStore backed by a map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

var _ contract.CacheStore = &MemoryStore{} // Compile-time check

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get returns the value, version and timestamp (unix nanoseconds) stored under key.
func (s *MemoryStore) Get(key string) ([]byte, int, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, 0, 0, ErrCacheMiss
	}
	return e.value, e.version, e.timestamp, nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value []byte, version int, timestamp int64) error {
	buf := make([]byte, len(value))
	copy(buf, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]memoryEntry)
	}
	s.entries[key] = memoryEntry{value: buf, version: version, timestamp: timestamp}
	return nil
}

// GetStatus reports the entry count and the age span of the entries.
func (s *MemoryStore) GetStatus() (schema.CacheStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := schema.CacheStatus{
		Backend:      schema.MemoryBackend,
		TotalEntries: len(s.entries),
	}
	var oldest, newest int64
	for _, e := range s.entries {
		if oldest == 0 || e.timestamp < oldest {
			oldest = e.timestamp
		}
		if e.timestamp > newest {
			newest = e.timestamp
		}
	}
	if len(s.entries) > 0 {
		status.OldestEntryTime = time.Unix(0, oldest)
		status.LastEntryTime = time.Unix(0, newest)
	}
	return status, nil
}

// Clear drops every entry.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]memoryEntry)
	return nil
}

// Close releases the entries.
func (s *MemoryStore) Close() error {
	return s.Clear()
}
