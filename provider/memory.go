package provider

import (
	"context"
	"sync"
)

// Memory serves tries from an in-memory map. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Put registers data under identifier. data must not be modified after.
func (m *Memory) Put(identifier string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[identifier] = data
}

func (m *Memory) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[identifier]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}
