package storage

import (
	"sort"
	"sync"
)

// MemoryBackend keeps entries in a map. It is volatile but, unlike a nil
// backend, lets several stores and tests share the same entries.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty MemoryBackend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MemoryBackend) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
