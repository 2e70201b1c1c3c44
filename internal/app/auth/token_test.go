package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.GenerateAccess("user-abc123")
	if err != nil {
		t.Fatalf("GenerateAccess: %v", err)
	}

	userID, err := tm.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if userID != "user-abc123" {
		t.Fatalf("expected user-abc123, got %q", userID)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.GenerateRefresh("user-abc123")
	if err != nil {
		t.Fatalf("GenerateRefresh: %v", err)
	}

	userID, err := tm.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if userID != "user-abc123" {
		t.Fatalf("expected user-abc123, got %q", userID)
	}
}

func TestTokenTypesDoNotCross(t *testing.T) {
	tm := newTestTokenManager()

	access, err := tm.GenerateAccess("user-abc123")
	if err != nil {
		t.Fatalf("GenerateAccess: %v", err)
	}
	refresh, err := tm.GenerateRefresh("user-abc123")
	if err != nil {
		t.Fatalf("GenerateRefresh: %v", err)
	}

	if _, err := tm.VerifyAccess(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}
	if _, err := tm.VerifyRefresh(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.GenerateAccess("user-abc123")
	if err != nil {
		t.Fatalf("GenerateAccess: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := tm.VerifyAccess(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("tampered token accepted: %v", err)
	}
}

func TestWrongKeyRejected(t *testing.T) {
	tm := newTestTokenManager()
	other := NewTokenManager("other-access", "other-refresh", 30*time.Minute)

	token, err := other.GenerateAccess("user-abc123")
	if err != nil {
		t.Fatalf("GenerateAccess: %v", err)
	}
	if _, err := tm.VerifyAccess(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token signed with another key accepted: %v", err)
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", -time.Minute)

	token, err := tm.GenerateAccess("user-abc123")
	if err != nil {
		t.Fatalf("GenerateAccess: %v", err)
	}
	if _, err := tm.VerifyAccess(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expired token accepted: %v", err)
	}
}
