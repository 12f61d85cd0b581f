package service

import (
	"sync"
	"time"

	"github.com/irendoro/trpis-tdd/config"
	autherror "github.com/irendoro/trpis-tdd/internal/errors"
	"github.com/irendoro/trpis-tdd/internal/identity/domain"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Session is the minimal authenticated identity handed to the transport
// layer on a successful login.
type Session struct {
	Username string
}

// IdentityService orchestrates registration, login, and profile mutation.
// A single mutex serializes every operation so that two concurrent logins
// for the same username cannot both observe the pre-increment failed count
// and under-count toward the lockout threshold. The lock is held through
// the bcrypt comparison as well: hashing is CPU-bound and bounded, and
// serializing it keeps the flows trivially correct.
type IdentityService struct {
	mu      sync.Mutex
	store   domain.AccountStore
	hasher  PasswordHasher
	tracker *AttemptTracker
	roles   *RoleAssigner
}

func NewIdentityService(store domain.AccountStore, hasher PasswordHasher, cfg *config.Config) *IdentityService {
	return &IdentityService{
		store:   store,
		hasher:  hasher,
		tracker: NewAttemptTracker(cfg.LoginMaxAttempts, time.Duration(cfg.LockoutMinutes)*time.Minute),
		roles:   NewRoleAssigner(),
	}
}

// Register validates the credentials, checks username uniqueness, and stores
// the new account with a freshly hashed password. The first account ever
// registered becomes the admin.
func (s *IdentityService) Register(username, password string) (*domain.Account, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness before hashing: no point paying for bcrypt on a username
	// that is already taken.
	if _, err := s.store.Get(username); err == nil {
		return nil, autherror.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	acc := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(acc); err != nil {
		return nil, err
	}
	// The admin slot is consumed only by a registration that actually
	// committed.
	acc.Role = s.roles.Assign()

	return acc, nil
}

// Login authenticates the credentials, driving the attempt tracker as it
// goes. Unknown usernames never reach the tracker: lockout protects
// existing accounts, not probes.
func (s *IdentityService) Login(username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, &autherror.ValidationError{Field: "credentials", Reason: "username and password are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.store.Get(username)
	if err != nil {
		return nil, autherror.ErrInvalidUsername
	}

	if err := s.tracker.CheckLock(acc); err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		return nil, s.tracker.RecordFailure(acc)
	}

	s.tracker.RecordSuccess(acc)
	return &Session{Username: acc.Username}, nil
}

// Profile returns the account for the given (already authenticated)
// username.
func (s *IdentityService) Profile(username string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(username)
}

// UpdatePassword changes target's password on behalf of acting. An empty
// target means acting's own account; changing someone else's password
// requires the admin role.
func (s *IdentityService) UpdatePassword(acting, target, newPassword string) error {
	if target == "" {
		target = acting
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(acting, target); err != nil {
		return err
	}

	// The target must exist before we pay for the hash: an admin naming an
	// unknown username is a bad request, not an internal fault.
	if _, err := s.store.Get(target); err != nil {
		return autherror.ErrInvalidUsername
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePasswordHash(target, hash)
}

// DeleteAccount removes the acting user's own account together with its
// lockout state. Deletion only ever targets the acting identity, so no role
// check is involved.
func (s *IdentityService) DeleteAccount(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(username)
}

// Authorize decides whether acting may mutate target's account: permitted
// for self-service and for admins, denied otherwise.
func (s *IdentityService) Authorize(acting, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorize(acting, target)
}

// authorize is Authorize without the lock, for callers that already hold it.
func (s *IdentityService) authorize(acting, target string) error {
	if acting == target {
		return nil
	}
	acc, err := s.store.Get(acting)
	if err != nil {
		// The acting identity no longer exists; deny rather than guess.
		return autherror.ErrDenied
	}
	if acc.Role == domain.RoleAdmin {
		return nil
	}
	return autherror.ErrDenied
}

func validateUsername(username string) error {
	if len(username) < minUsernameLen {
		return &autherror.ValidationError{Field: "username", Reason: "must be at least 3 characters"}
	}
	if !validIdentifierChars(username) {
		return &autherror.ValidationError{Field: "username", Reason: "only letters, digits and underscore are allowed"}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return &autherror.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	if !validIdentifierChars(password) {
		return &autherror.ValidationError{Field: "password", Reason: "only letters, digits and underscore are allowed"}
	}
	return nil
}

func validIdentifierChars(s string) bool {
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
