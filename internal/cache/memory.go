package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mediavault/instafetch/internal/domain"
)

type memoryEntry struct {
	content   *domain.ResolvedContent
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-memory TTL cache. Expiration is checked
// at read time; there is no background sweep. Expired entries are dropped
// when a write touches the map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory resolution cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the cached content for shortcode, or false when absent or
// expired. An expired entry is never returned.
func (s *MemoryStore) Get(_ context.Context, shortcode string) (*domain.ResolvedContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[shortcode]
	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.content, true
}

// Put stores content under shortcode for ttl, replacing any previous entry.
// Entries that have already expired are evicted on the same write.
func (s *MemoryStore) Put(_ context.Context, shortcode string, content *domain.ResolvedContent, ttl time.Duration) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
		}
	}

	s.entries[shortcode] = memoryEntry{
		content:   content,
		expiresAt: now.Add(ttl),
	}
}

// Close releases nothing; it satisfies the Store interface.
func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
