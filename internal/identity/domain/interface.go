package domain

//go:generate mockgen -destination=../../mocks/mock_account_store.go -package=mocks github.com/irendoro/trpis-tdd/internal/identity/domain AccountStore

// AccountStore holds the account aggregates. Get returns the live aggregate;
// callers that mutate it must serialize access (the identity service does so
// with its own lock).
type AccountStore interface {
	Create(acc *Account) error
	Get(username string) (*Account, error)
	UpdatePasswordHash(username, newHash string) error
	Delete(username string) error
}
