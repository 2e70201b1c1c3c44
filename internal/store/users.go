package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidUser indicates validation failure for user data.
	ErrInvalidUser = errors.New("invalid user")
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("username already taken")
	// ErrUserNotFound signals a missing user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")

	dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")
)

// CreateUser registers a new user and returns its generated identifier.
func (s *Store) CreateUser(ctx context.Context, username, password, fullname string) (string, error) {
	username = strings.TrimSpace(username)
	fullname = strings.TrimSpace(fullname)
	if username == "" || password == "" || fullname == "" {
		return "", fmt.Errorf("%w: username, password and fullname are required", ErrInvalidUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := newID("user")
	if err != nil {
		return "", err
	}

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, id, username, hash, fullname).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// VerifyCredentials validates a username/password pair and returns the user id.
func (s *Store) VerifyCredentials(ctx context.Context, username, password string) (string, error) {
	var (
		id   string
		hash []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password
		FROM users
		WHERE username = $1
	`, username).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn comparable time so missing users are not distinguishable.
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return id, nil
}

// UserExists reports ErrUserNotFound when no user has the given id.
func (s *Store) UserExists(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM users
		WHERE id = $1
	`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}
	return nil
}
