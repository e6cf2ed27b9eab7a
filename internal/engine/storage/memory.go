package storage

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store used by tests and the in-process host.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get returns the value for key and whether the key exists.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot alias the stored slice.
	out := make([]byte, len(value))
	copy(out, value)

	return out, true, nil
}

// Set stores the value under key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored

	return nil
}

// Remove deletes the key.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// ApplyBatch applies all writes and removals under a single lock.
func (s *MemoryStore) ApplyBatch(_ context.Context, writes map[string][]byte, removes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range writes {
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = stored
	}

	for _, key := range removes {
		delete(s.data, key)
	}

	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
