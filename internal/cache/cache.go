package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL bounds how long any cached payload is served.
const DefaultTTL = 300 * time.Second

// Store holds opaque payloads under string keys for a bounded time.
// Implementations degrade silently: a failed read is a miss and a failed
// write is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type memoryEntry struct {
	value    []byte
	storedAt time.Time
}

// MemoryStore is an in-process Store with lazy expiry. A stale entry is
// treated as absent but stays in the map until the next Set overwrites it.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.storedAt) >= s.ttl {
		return nil, false
	}
	return entry.value, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, storedAt: s.now()}
}
