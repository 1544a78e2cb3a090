package session

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps sessions in a mutex-guarded map. It backs tests and
// deployments that run without redis. Expired entries are dropped lazily
// on Get; there is no background sweeper.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (m *MemoryStore) Create(_ context.Context, s Session) error {
	if s.SessionID == "" || s.Username == "" {
		return fmt.Errorf("session: missing session_id or username")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.SessionID] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
