package auth

import (
	"context"
	"strings"
)

type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}

type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (Account, error)
}

// StaticStore serves a fixed set of accounts loaded at startup. Emails are
// matched case-insensitively.
type StaticStore struct {
	accounts map[string]Account
}

func NewStaticStore(accounts ...Account) *StaticStore {
	s := &StaticStore{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		s.accounts[normalizeEmail(a.Email)] = a
	}
	return s
}

func (s *StaticStore) FindByEmail(_ context.Context, email string) (Account, error) {
	a, ok := s.accounts[normalizeEmail(email)]
	if !ok {
		return Account{}, ErrUserNotFound
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
