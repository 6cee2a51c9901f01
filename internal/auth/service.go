// Package auth handles operator login and access token checks.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type LoginResult struct {
	AccessToken string
	UserID      int64
}

type VerifyResult struct {
	Valid  bool
	UserID int64
}

type Service struct {
	store  CredentialStore
	tokens *TokenManager
}

func NewService(store CredentialStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrInvalidPassword
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, UserID: account.ID}, nil
}

// VerifyToken never fails; an unusable token is reported as not valid.
func (s *Service) VerifyToken(token string) VerifyResult {
	if token == "" {
		return VerifyResult{}
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return VerifyResult{}
	}
	return VerifyResult{Valid: true, UserID: userID}
}
