package kvstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	createdAt time.Time
}

// Memory is an in-process store. It is safe for concurrent use and makes
// SetIfAbsent atomic within the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

// Get returns a copy of the value stored under key
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(e.value), true, nil
}

// Set stores value under key, replacing any previous value
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = memoryEntry{value: clone(value), createdAt: m.now()}
	return nil
}

// SetIfAbsent stores value only when key is absent
func (m *Memory) SetIfAbsent(_ context.Context, key string, value []byte) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.data[key]; ok {
		return clone(e.value), false, nil
	}
	m.data[key] = memoryEntry{value: clone(value), createdAt: m.now()}
	return clone(value), true, nil
}

// PruneBefore deletes entries written before cutoff
func (m *Memory) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key, e := range m.data {
		if e.createdAt.Before(cutoff) {
			delete(m.data, key)
			deleted++
		}
	}
	return deleted, nil
}

// Len returns the number of stored entries
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
