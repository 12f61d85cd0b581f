package memory

import (
	"sync"
	"time"

	autherror "github.com/irendoro/trpis-tdd/internal/errors"
	"github.com/irendoro/trpis-tdd/internal/identity/domain"
)

// Store keeps account aggregates in a plain map. This is the whole
// persistence story: the service is in-memory and single-process.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]*domain.Account)}
}

func (s *Store) Create(acc *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acc.Username]; ok {
		return autherror.ErrUsernameTaken
	}
	s.accounts[acc.Username] = acc
	return nil
}

func (s *Store) Get(username string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, autherror.ErrNoSuchUser
	}
	return acc, nil
}

func (s *Store) UpdatePasswordHash(username, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return autherror.ErrNoSuchUser
	}
	acc.PasswordHash = newHash
	acc.UpdatedAt = time.Now()
	return nil
}

func (s *Store) Delete(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; !ok {
		return autherror.ErrNoSuchUser
	}
	// The aggregate carries the attempt/lockout state, so deleting the
	// account also discards any pending lockout. A recreated username
	// starts clear.
	delete(s.accounts, username)
	return nil
}
