package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/irendoro/trpis-tdd/internal/errors"
	"github.com/irendoro/trpis-tdd/internal/identity/domain"
)

func newClockedTracker(start time.Time) (*AttemptTracker, func(time.Duration)) {
	current := start
	tr := NewAttemptTracker(3, 10*time.Minute)
	tr.now = func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return tr, advance
}

func TestAttemptTracker_FailuresBelowThreshold(t *testing.T) {
	tr, _ := newClockedTracker(time.Now())
	acc := &domain.Account{Username: "user1"}

	err := tr.RecordFailure(acc)
	assert.ErrorIs(t, err, autherror.ErrInvalidPassword)
	assert.Equal(t, 1, acc.FailedAttempts)

	err = tr.RecordFailure(acc)
	assert.ErrorIs(t, err, autherror.ErrInvalidPassword)
	assert.Equal(t, 2, acc.FailedAttempts)
	assert.True(t, acc.LockedUntil.IsZero())
}

func TestAttemptTracker_ThresholdImposesLockout(t *testing.T) {
	start := time.Now()
	tr, _ := newClockedTracker(start)
	acc := &domain.Account{Username: "user1", FailedAttempts: 2}

	err := tr.RecordFailure(acc)
	assert.ErrorIs(t, err, autherror.ErrTooManyAttempts)

	// The counter resets the moment the lock is imposed, so the window is
	// a clean suspension, not an accumulating penalty.
	assert.Equal(t, 0, acc.FailedAttempts)
	assert.Equal(t, start.Add(10*time.Minute), acc.LockedUntil)
}

func TestAttemptTracker_CheckLockWhileLocked(t *testing.T) {
	tr, advance := newClockedTracker(time.Now())
	acc := &domain.Account{Username: "user1", FailedAttempts: 2}

	require.ErrorIs(t, tr.RecordFailure(acc), autherror.ErrTooManyAttempts)

	advance(4 * time.Minute)
	err := tr.CheckLock(acc)
	assert.ErrorIs(t, err, autherror.ErrAccountLocked)

	var lockErr *autherror.LockedError
	require.ErrorAs(t, err, &lockErr)
	assert.Equal(t, 6*time.Minute, lockErr.Remaining)
}

func TestAttemptTracker_ExpiredLockClearsLazily(t *testing.T) {
	tr, advance := newClockedTracker(time.Now())
	acc := &domain.Account{Username: "user1", FailedAttempts: 2}

	require.ErrorIs(t, tr.RecordFailure(acc), autherror.ErrTooManyAttempts)

	advance(10*time.Minute + time.Second)
	assert.NoError(t, tr.CheckLock(acc))
	assert.True(t, acc.LockedUntil.IsZero())
	assert.Equal(t, 0, acc.FailedAttempts)
}

func TestAttemptTracker_LockAlreadyExpiredInPast(t *testing.T) {
	tr, _ := newClockedTracker(time.Now())
	acc := &domain.Account{Username: "user1", LockedUntil: time.Now().Add(-time.Minute)}

	assert.NoError(t, tr.CheckLock(acc))
	assert.True(t, acc.LockedUntil.IsZero())
}

func TestAttemptTracker_SuccessResetsCounter(t *testing.T) {
	tr, _ := newClockedTracker(time.Now())
	acc := &domain.Account{Username: "user1", FailedAttempts: 2}

	tr.RecordSuccess(acc)
	assert.Equal(t, 0, acc.FailedAttempts)
	assert.True(t, acc.LockedUntil.IsZero())

	// The next failure starts counting from scratch.
	assert.ErrorIs(t, tr.RecordFailure(acc), autherror.ErrInvalidPassword)
	assert.Equal(t, 1, acc.FailedAttempts)
}
