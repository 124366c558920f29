package kvstore

import (
	"context"
	"sync"
	"time"

	"pos-terminal/internal/pkg/clock"
)

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryStore keeps values in process memory. Expired keys are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if !e.expiresAt.IsZero() && !m.clock.Now().Before(e.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur == e {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", ErrNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.clock.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	m.mu.Unlock()
	return nil
}
