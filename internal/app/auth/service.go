// Package auth coordinates credential checks and token issuance.
package auth

import (
	"context"
)

// Store captures the persistence needs for authentication workflows.
type Store interface {
	VerifyCredentials(ctx context.Context, username, password string) (string, error)
	AddRefreshToken(ctx context.Context, token string) error
	VerifyRefreshToken(ctx context.Context, token string) error
	DeleteRefreshToken(ctx context.Context, token string) error
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service coordinates login, token refresh and logout.
type Service interface {
	Login(ctx context.Context, username, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type service struct {
	store  Store
	tokens *TokenManager
}

// New constructs a Service backed by the provided Store and TokenManager.
func New(store Store, tokens *TokenManager) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Login(ctx context.Context, username, password string) (TokenPair, error) {
	userID, err := s.store.VerifyCredentials(ctx, username, password)
	if err != nil {
		return TokenPair{}, err
	}

	access, err := s.tokens.GenerateAccess(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefresh(userID)
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.store.AddRefreshToken(ctx, refresh); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	// A refresh token must both verify cryptographically and still be
	// registered; logout removes the registration.
	if err := s.store.VerifyRefreshToken(ctx, refreshToken); err != nil {
		return "", err
	}
	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccess(userID)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	return s.store.DeleteRefreshToken(ctx, refreshToken)
}
