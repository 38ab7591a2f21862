package store

import (
	"sync"

	"github.com/hopwire/pour-panic/engine"
)

// MemoryStore is an in-process SaveStore for tests and ephemeral runs
type MemoryStore struct {
	mu    sync.Mutex
	state engine.PersistedState
	saved bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (engine.PersistedState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return engine.DefaultPersisted(), nil
	}
	return m.state, nil
}

func (m *MemoryStore) Save(state engine.PersistedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.saved = true
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
