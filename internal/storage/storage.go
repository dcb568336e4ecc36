// Package storage wraps a persistent key-value backend with JSON encoding and
// error containment. No operation returns an error to the caller: failures
// degrade to a logged warning plus a boolean or the supplied default, so
// interface state handling can never crash on a bad store.
package storage

import (
	"encoding/json"

	"ashfall/ui/internal/console"
)

// Backend is the raw string store underneath the adapter.
type Backend interface {
	Load(key string) (value string, ok bool, err error)
	Store(key, value string) error
	Delete(key string) error
	Close() error
}

type Store struct {
	backend Backend
	console *console.Console
}

func New(backend Backend, c *console.Console) *Store {
	if c == nil {
		c = console.New(console.Config{})
	}
	return &Store{backend: backend, console: c}
}

// Get decodes the stored JSON for key over a copy of def, so fields absent
// from the persisted value keep their defaults while present fields override
// them (arrays replace wholesale). Absent key, load failure, or decode failure
// all return def; only failures are logged.
func Get[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.Load(key)
	if err != nil {
		s.console.Warning("Failed to get storage item %s: %v", key, err)
		return def
	}
	if !ok {
		return def
	}
	out := def
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.console.Warning("Failed to get storage item %s: %v", key, err)
		return def
	}
	return out
}

// Has reports whether key holds a value, without decoding it.
func (s *Store) Has(key string) bool {
	_, ok, err := s.backend.Load(key)
	return err == nil && ok
}

// Set encodes value as JSON and writes it under key. Returns false on encode
// or backend failure; a failed write never leaves a partial value behind.
func (s *Store) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.console.Warning("Failed to set storage item %s: %v", key, err)
		return false
	}
	if err := s.backend.Store(key, string(data)); err != nil {
		s.console.Warning("Failed to set storage item %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) Remove(key string) bool {
	if err := s.backend.Delete(key); err != nil {
		s.console.Warning("Failed to remove storage item %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) Close() error {
	return s.backend.Close()
}
