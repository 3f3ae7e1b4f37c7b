package credstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

// FileStore keeps both tokens in a single JSON file under the user's
// config dir, surviving process restarts the way browser storage
// survives reloads.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// NewFileStore builds a store backed by the given file path.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Get returns the persisted token for the role, or absent on any
// storage error.
func (s *FileStore) Get(_ context.Context, role domain.Role) (string, bool) {
	key, ok := storageKey(role)
	if !ok {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.read()
	token, present := tokens[key]
	return token, present && token != ""
}

// Set persists the token immediately, overwriting any prior one.
func (s *FileStore) Set(_ context.Context, role domain.Role, token string) {
	key, ok := storageKey(role)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.read()
	tokens[key] = token
	s.write(tokens)
}

// Clear removes the persisted token for the role.
func (s *FileStore) Clear(_ context.Context, role domain.Role) {
	key, ok := storageKey(role)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.read()
	if _, present := tokens[key]; !present {
		return
	}
	delete(tokens, key)
	s.write(tokens)
}

func (s *FileStore) read() map[string]string {
	tokens := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return tokens
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		// A corrupt file reads as logged out for both roles.
		return make(map[string]string)
	}
	return tokens
}

func (s *FileStore) write(tokens map[string]string) {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		s.warn("marshal credentials", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.warn("create credentials dir", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.warn("write credentials", err)
	}
}

func (s *FileStore) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, zap.Error(err), zap.String("path", s.path))
	}
}
