package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid indicates a token that failed signature or claim checks.
var ErrTokenInvalid = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carries the authenticated user's identity inside a JWT.
type Claims struct {
	UserID    string `json:"userId"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens. The two token
// kinds use separate keys so a leaked access key cannot mint refresh tokens.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
}

// NewTokenManager builds a TokenManager from the configured signing keys.
func NewTokenManager(accessKey, refreshKey string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
	}
}

// GenerateAccess issues a short-lived access token for the user.
func (m *TokenManager) GenerateAccess(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// GenerateRefresh issues a refresh token. Refresh tokens do not expire on
// their own; revocation happens by removing them from the store.
func (m *TokenManager) GenerateRefresh(userID string) (string, error) {
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshKey)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns the user id it carries.
func (m *TokenManager) VerifyAccess(token string) (string, error) {
	return m.verify(token, m.accessKey, tokenTypeAccess)
}

// VerifyRefresh validates a refresh token's signature and returns the user id.
func (m *TokenManager) VerifyRefresh(token string) (string, error) {
	return m.verify(token, m.refreshKey, tokenTypeRefresh)
}

func (m *TokenManager) verify(token string, key []byte, wantType string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ErrTokenInvalid
	}
	if claims.TokenType != wantType || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
