package storage

import (
	"errors"
	"sync"
)

// Memory is a map-backed Backend for tests and ephemeral sessions. Writes can
// be armed to fail so callers can exercise quota-failure containment.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]string
	failWrites bool
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Load(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *Memory) Store(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errors.New("store quota exceeded")
	}
	m.entries[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errors.New("store quota exceeded")
	}
	delete(m.entries, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// SetFailWrites toggles write failures for subsequent Store/Delete calls.
func (m *Memory) SetFailWrites(fail bool) {
	m.mu.Lock()
	m.failWrites = fail
	m.mu.Unlock()
}

// SetRaw seeds a raw stored string, bypassing JSON encoding. Tests use it to
// simulate corrupted persisted values.
func (m *Memory) SetRaw(key, value string) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

var _ Backend = (*Memory)(nil)
