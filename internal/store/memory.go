package store

import "sync"

// MemStore is an in-memory Store used by tests and as an injectable fake
// anywhere durability is not wanted.
type MemStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// GetRaw returns the value stored under storageKey.
func (m *MemStore) GetRaw(storageKey string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.values[storageKey]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// SetRaw stores value under storageKey.
func (m *MemStore) SetRaw(storageKey string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[storageKey] = append([]byte(nil), value...)
	return nil
}

// Keys lists every stored key.
func (m *MemStore) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}

// Delete removes storageKey.
func (m *MemStore) Delete(storageKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, storageKey)
	return nil
}

// Close is a no-op.
func (m *MemStore) Close() error { return nil }
