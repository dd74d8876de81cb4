package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rzbill/registry/pkg/types"
)

// MemoryStore is the in-memory implementation of the Store interface. One
// RWMutex covers the whole map for the duration of each operation, so writers
// to different refs serialize against each other; that is a scalability
// ceiling, not a correctness gap, and keeps the backend trivially all-or-
// nothing. Values are kept in serialized form so reads decode into the
// caller's own type and never share references with the writer.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[types.Ref][]byte
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[types.Ref][]byte),
	}
}

var _ Store = &MemoryStore{}

// Open is a no-op for the memory store.
func (m *MemoryStore) Open(path string) error {
	return nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// Write stores the resource under its own ref, overwriting any prior value.
func (m *MemoryStore) Write(ctx context.Context, res types.Resource) error {
	ref := res.ResourceRef()

	data, err := json.Marshal(res)
	if err != nil {
		return &SerializationError{Ref: ref, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ref] = data

	return nil
}

// Get retrieves the resource under ref and decodes it into out.
func (m *MemoryStore) Get(ctx context.Context, ref types.Ref, out interface{}) error {
	m.mu.RLock()
	data, ok := m.data[ref]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("resource %s: %w", ref, ErrNotFound)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &SerializationError{Ref: ref, Err: err}
	}

	return nil
}

// Delete removes the resource under ref.
func (m *MemoryStore) Delete(ctx context.Context, ref types.Ref) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[ref]; !ok {
		return fmt.Errorf("resource %s: %w", ref, ErrNotFound)
	}

	delete(m.data, ref)
	return nil
}

// Len reports the number of stored resources. Test helper.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
