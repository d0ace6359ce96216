package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// memoryPreferences keeps entries in a map. Nothing survives the process.
type memoryPreferences struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryPreferences returns an empty in-memory [Preferences].
func NewMemoryPreferences() Preferences {
	return &memoryPreferences{entries: make(map[string]string)}
}

func (m *memoryPreferences) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *memoryPreferences) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *memoryPreferences) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *memoryPreferences) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.entries)
	return nil
}

func (m *memoryPreferences) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.entries)), nil
}
