package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCollaborationExists signals the user already collaborates on the
	// playlist.
	ErrCollaborationExists = errors.New("collaboration already exists")
	// ErrCollaborationNotFound signals a collaboration that is not registered.
	ErrCollaborationNotFound = errors.New("collaboration not found")
)

// CreateCollaboration grants a user collaborator access to a playlist.
func (s *Store) CreateCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	id, err := newID("collab")
	if err != nil {
		return "", err
	}

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, playlistID, userID).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return "", ErrCollaborationExists
		}
		return "", fmt.Errorf("insert collaboration: %w", err)
	}

	return id, nil
}

// DeleteCollaboration revokes a user's collaborator access.
func (s *Store) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID)
	if err != nil {
		return fmt.Errorf("delete collaboration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete collaboration: %w", err)
	}
	if affected == 0 {
		return ErrCollaborationNotFound
	}
	return nil
}
