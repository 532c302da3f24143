package repository

import (
	"context"
	"sync"
	"time"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryKVStore is the in-process key-value backend used by tests and by
// local runs without Redis or Postgres. Entries written through Put carry an
// expiry and vanish lazily on read.
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryKVStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", domain.ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", domain.ErrKeyNotFound
	}

	return entry.value, nil
}

func (s *MemoryKVStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{value: value}
	return nil
}

func (s *MemoryKVStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryKVStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryKVStore) Delete(ctx context.Context, key string) error {
	return s.Remove(ctx, key)
}
