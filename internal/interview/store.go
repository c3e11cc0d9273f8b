package interview

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/mockmate/internal/types"
)

// ErrSessionNotFound is returned for unknown session IDs
var ErrSessionNotFound = errors.New("session not found")

// Store is an in-memory registry of sessions keyed by UUID
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session for profile under a fresh ID
func (s *Store) Create(profile *types.ResumeProfile, document string) *Session {
	session := NewSession(uuid.NewString(), profile, document)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

// Get returns the session with the given ID
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
