package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/irendoro/trpis-tdd/internal/identity/service PasswordHasher

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the one-way salted hash primitive. The service never
// compares plaintext against a stored credential directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, candidate string) error
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
}
