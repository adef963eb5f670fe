package contract

import (
	"github.com/sasha-s/go-deadlock"
)

// MockState is the in-memory State used by tests and the simulator. The
// deadlock-checking mutex mirrors the mock ledger since the sim shares one
// state across command handlers.
type MockState struct {
	mu deadlock.Mutex
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{
		db: make(map[string]string),
	}
}

func (m *MockState) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.db, key)
}

// Len exposes the entry count for storage-shape assertions in tests.
func (m *MockState) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.db)
}
