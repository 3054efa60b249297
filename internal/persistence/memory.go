package persistence

import (
	"context"
	"sync"
)

// MemoryMedium stores values in memory for tests and throwaway sessions.
type MemoryMedium struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// NewMemoryMedium constructs an empty MemoryMedium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{values: make(map[string][]byte)}
}

// Get implements Medium.
func (m *MemoryMedium) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrUnavailable
	}
	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements Medium.
func (m *MemoryMedium) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrUnavailable
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Medium.
func (m *MemoryMedium) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrUnavailable
	}
	delete(m.values, key)
	return nil
}

// Close marks the medium unavailable. It is safe to call more than once.
func (m *MemoryMedium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
