package service

import (
	"time"

	autherror "github.com/irendoro/trpis-tdd/internal/errors"
	"github.com/irendoro/trpis-tdd/internal/identity/domain"
)

// AttemptTracker applies the per-account failed-attempt transitions:
// clear -> accumulating -> locked(until). The state itself lives on the
// Account aggregate; the tracker only decides transitions. Expired locks are
// cleared lazily on the next attempt, there is no background sweeper.
type AttemptTracker struct {
	MaxAttempts int
	LockoutFor  time.Duration

	now func() time.Time
}

func NewAttemptTracker(maxAttempts int, lockoutFor time.Duration) *AttemptTracker {
	return &AttemptTracker{
		MaxAttempts: maxAttempts,
		LockoutFor:  lockoutFor,
		now:         time.Now,
	}
}

// CheckLock inspects the account's lock ahead of a password check. A live
// lock yields a LockedError carrying the remaining cooldown; an expired lock
// is cleared together with the counter so the attempt proceeds from a clean
// state.
func (t *AttemptTracker) CheckLock(acc *domain.Account) error {
	if acc.LockedUntil.IsZero() {
		return nil
	}
	now := t.now()
	if now.Before(acc.LockedUntil) {
		return &autherror.LockedError{Remaining: acc.LockedUntil.Sub(now)}
	}
	acc.LockedUntil = time.Time{}
	acc.FailedAttempts = 0
	return nil
}

// RecordFailure registers a wrong password. Reaching the threshold imposes a
// lockout and resets the counter to zero, so the lock window is a clean
// timed suspension rather than an accumulating penalty.
func (t *AttemptTracker) RecordFailure(acc *domain.Account) error {
	acc.FailedAttempts++
	if acc.FailedAttempts >= t.MaxAttempts {
		acc.FailedAttempts = 0
		acc.LockedUntil = t.now().Add(t.LockoutFor)
		return autherror.ErrTooManyAttempts
	}
	return autherror.ErrInvalidPassword
}

// RecordSuccess resets the account to the clear state regardless of where it
// was.
func (t *AttemptTracker) RecordSuccess(acc *domain.Account) {
	acc.FailedAttempts = 0
	acc.LockedUntil = time.Time{}
}
