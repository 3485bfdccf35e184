package history

import (
	"context"
	"sync"
)

// InMemoryStore implements TurnStore for tests and lightweight deployments.
// Unlike Log, a store may be shared between sessions, so it locks.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]Turn)}
}

func (s *InMemoryStore) AppendTurns(_ context.Context, sessionID string, turns []Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = make(map[string][]Turn)
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	return nil
}

func (s *InMemoryStore) Turns(_ context.Context, sessionID string, limit int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.sessions[sessionID]
	if limit > 0 && limit < len(turns) {
		turns = turns[len(turns)-limit:]
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *InMemoryStore) Count(_ context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[sessionID]), nil
}

var _ TurnStore = (*InMemoryStore)(nil)
