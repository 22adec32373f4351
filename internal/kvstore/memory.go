package kvstore

import "sync"

// Memory implements Provider with a plain map. It backs tests and any
// run that wants no durability at all.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSets makes every Set return an error when non-nil. Tests use it
	// to exercise the best-effort persistence path.
	FailSets error
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(key string, value []byte) error {
	if m.FailSets != nil {
		return m.FailSets
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Remove deletes key.
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys lists every stored key.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out, nil
}
