package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// Memory is a map-backed Store for tests and ephemeral runs. It copies
// values on both read and write so callers can never alias its internals.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// FailWrites makes every Set return an error when true. Tests use it to
	// exercise the write-dropped degradation path.
	FailWrites bool
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get returns the raw JSON stored under key, or domain.ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("kv.Memory.Get %q: %w", key, domain.ErrNotFound)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Set overwrites the value stored under key.
func (m *Memory) Set(_ context.Context, key string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return fmt.Errorf("kv.Memory.Set %q: storage unavailable", key)
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.entries[key] = cp
	return nil
}

// Len returns the number of stored keys. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
