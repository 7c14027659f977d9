package memory

import (
	"context"
	"sync"
)

// Storage - временное in-memory хранилище
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

func (m *Storage) GetMany(_ context.Context, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.values[k]; ok {
			result[k] = v
		}
	}
	return result, nil
}

func (m *Storage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Storage) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *Storage) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *Storage) Close() error {
	return nil
}
