package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTooManyAttempts  = errors.New("too many failed login attempts")
	ErrAccountLocked    = errors.New("account is locked")
	ErrDenied           = errors.New("permission denied")
	ErrNotAuthenticated = errors.New("user not logged in")
	ErrNoSuchUser       = errors.New("no such user")
)

// LockedError reports a login attempt against a locked account along with
// the time remaining until the lock expires. errors.Is matches it against
// ErrAccountLocked.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account is locked, try again in %s", e.Remaining.Round(time.Second))
}

func (e *LockedError) Is(target error) bool { return target == ErrAccountLocked }

// ValidationError reports malformed or out-of-policy input. It is always
// recoverable and safe to echo back to the caller verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
