package session

import (
	"context"
	"sync"
	"time"

	"sabha/pkg/sentinel"
)

// InMemorySessionStore keeps gateway sessions in a mutex-guarded map. It is
// the default store for single-instance deployments and tests; distributed
// deployments use the redis store.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewInMemoryStore builds an empty in-memory session store.
func NewInMemoryStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]*Session)}
}

func (s *InMemorySessionStore) Create(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[sess.ID]; exists {
		return sentinel.ErrConflict
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *InMemorySessionStore) Find(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, sentinel.ErrNotFound
	}
	if sess.Expired(time.Now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, sentinel.ErrExpired
	}
	return sess, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
