package adapter

import (
	"context"
	"sync"

	"career-passport/internal/domain"
)

// MemoryStoreAdapter is an in-process domain.KeyValueStore. Nothing
// survives the process; it backs tests and the "memory" storage driver.
type MemoryStoreAdapter struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStoreAdapter() *MemoryStoreAdapter {
	return &MemoryStoreAdapter{data: make(map[string]string)}
}

func (m *MemoryStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryStoreAdapter) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStoreAdapter) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len is the number of stored keys.
func (m *MemoryStoreAdapter) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
