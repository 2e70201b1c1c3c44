package store

import (
	"context"
	"fmt"
)

// ToggleLike flips the like state of (userID, albumID) and reports whether
// the like existed beforehand. The insert is a single atomic statement so two
// concurrent togglers cannot both insert; whichever conflicts falls through
// to the delete branch.
func (s *Store) ToggleLike(ctx context.Context, userID, albumID string) (bool, error) {
	id, err := newID("likes")
	if err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO user_album_likes (id, user_id, album_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, album_id) DO NOTHING
	`, id, userID, albumID)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	if inserted == 1 {
		return false, nil
	}

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM user_album_likes
		WHERE user_id = $1 AND album_id = $2
	`, userID, albumID); err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return true, nil
}

// CountLikes returns the authoritative like count for an album.
func (s *Store) CountLikes(ctx context.Context, albumID string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM user_album_likes
		WHERE album_id = $1
	`, albumID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}
