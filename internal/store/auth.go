package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRefreshTokenInvalid signals a refresh token that was never issued or
// has already been revoked.
var ErrRefreshTokenInvalid = errors.New("refresh token is not registered")

// AddRefreshToken records an issued refresh token so it can be honored later.
func (s *Store) AddRefreshToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO authentications (token)
		VALUES ($1)
	`, token); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// VerifyRefreshToken checks that a refresh token is currently registered.
func (s *Store) VerifyRefreshToken(ctx context.Context, token string) error {
	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT token
		FROM authentications
		WHERE token = $1
	`, token).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRefreshTokenInvalid
		}
		return fmt.Errorf("lookup refresh token: %w", err)
	}
	return nil
}

// DeleteRefreshToken revokes a refresh token.
func (s *Store) DeleteRefreshToken(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM authentications
		WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if affected == 0 {
		return ErrRefreshTokenInvalid
	}
	return nil
}
