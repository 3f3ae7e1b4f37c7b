package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/domain"
)

// Session tracks teacher authentication. It is constructed once at the
// application root and injected; state is derived entirely from the
// credential store, read once at init and again on Reload.
type Session struct {
	mu            sync.Mutex
	store         credstore.Store
	logger        *zap.Logger
	authenticated bool
	subscribers   map[int]func(bool)
	nextSub       int
}

// New builds a session backed by the given store, deriving the initial
// state from whatever credential survived the last run.
func New(ctx context.Context, store credstore.Store, logger *zap.Logger) *Session {
	s := &Session{
		store:       store,
		logger:      logger,
		subscribers: make(map[int]func(bool)),
	}
	_, s.authenticated = store.Get(ctx, domain.RoleTeacher)
	return s
}

// Login stores the token as the teacher credential and notifies
// subscribers synchronously.
func (s *Session) Login(ctx context.Context, token string) {
	s.store.Set(ctx, domain.RoleTeacher, token)
	s.flip(true)
	if s.logger != nil {
		s.logger.Info("teacher session started")
	}
}

// Logout clears the teacher credential and notifies subscribers.
func (s *Session) Logout(ctx context.Context) {
	s.store.Clear(ctx, domain.RoleTeacher)
	s.flip(false)
	if s.logger != nil {
		s.logger.Info("teacher session ended")
	}
}

// IsAuthenticated reports whether a teacher credential is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Reload re-derives the state from storage, for callers that suspect
// the store was mutated outside Login/Logout.
func (s *Session) Reload(ctx context.Context) {
	_, authenticated := s.store.Get(ctx, domain.RoleTeacher)
	s.flip(authenticated)
}

// Subscribe registers fn to be called with the new state on every
// login/logout flip. The returned cancel func removes the subscription.
func (s *Session) Subscribe(fn func(bool)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) flip(authenticated bool) {
	s.mu.Lock()
	changed := s.authenticated != authenticated
	s.authenticated = authenticated
	subs := make([]func(bool), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(authenticated)
	}
}
