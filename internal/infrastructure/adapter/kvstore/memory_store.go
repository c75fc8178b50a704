package kvstore

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
)

// MemoryStore is a process-local KeyValueStore used for development and tests
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the stored value and whether the key exists
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errs.NewPersistenceError("read", key, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, errs.NewPersistenceError("read", key, ErrStoreClosed)
	}
	value, ok := m.data[key]
	return value, ok, nil
}

// Put writes all entries under one lock
func (m *MemoryStore) Put(ctx context.Context, entries map[string]string) error {
	if err := ctx.Err(); err != nil {
		return errs.NewPersistenceError("write", "", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errs.NewPersistenceError("write", "", ErrStoreClosed)
	}
	for key, value := range entries {
		m.data[key] = value
	}
	return nil
}

// Close marks the store closed; later calls fail
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
