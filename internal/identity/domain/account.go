package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account is the aggregate for a single username: credentials, role, and the
// failed-attempt/lockout state, kept together so the pieces can never drift
// apart (an attempt record cannot outlive its account).
type Account struct {
	Username     string
	PasswordHash string
	Role         Role

	// Lockout state. FailedAttempts counts consecutive wrong passwords
	// since the last success or imposed lockout; LockedUntil is zero when
	// the account is not locked.
	FailedAttempts int
	LockedUntil    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
