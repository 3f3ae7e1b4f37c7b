package credstore

import (
	"context"
	"sync"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

// MemoryStore keeps tokens in process memory. Nothing survives a
// restart; useful for tests and one-shot runs.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, role domain.Role) (string, bool) {
	key, ok := storageKey(role)
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	token, present := s.tokens[key]
	return token, present && token != ""
}

func (s *MemoryStore) Set(_ context.Context, role domain.Role, token string) {
	key, ok := storageKey(role)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = token
}

func (s *MemoryStore) Clear(_ context.Context, role domain.Role) {
	key, ok := storageKey(role)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, key)
}
