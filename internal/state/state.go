// Package state persists small key-value state (user profile, feedback
// history) locally. Loss or corruption of this state must never be fatal to
// the engine; callers fall back to in-memory defaults.
package state

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("state key not found")

// Store defines local key-value persistence operations. Values are opaque
// bytes; callers handle their own encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemStore is an in-memory Store used when no database path is configured and
// in tests. Contents are lost on process exit, which degrades to the
// documented "new user" behavior.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get returns the value for key or ErrKeyNotFound.
func (m *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Put stores value under key.
func (m *MemStore) Put(_ context.Context, key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key if present.
func (m *MemStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// Close is a no-op.
func (m *MemStore) Close() error {
	return nil
}
