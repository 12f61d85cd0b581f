package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps server-side sessions: opaque cookie id -> username. Session
// state never leaves the process, so deleting an account can invalidate
// every live session for that user.
type Store struct {
	mu       sync.Mutex
	sessions map[string]string
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]string)}
}

func (s *Store) Create(username string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = username
	s.mu.Unlock()
	return id
}

func (s *Store) Get(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.sessions[id]
	return username, ok
}

func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// DestroyUser drops every session belonging to the given username. Called
// when the account itself is deleted.
func (s *Store) DestroyUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.sessions {
		if u == username {
			delete(s.sessions, id)
		}
	}
}
