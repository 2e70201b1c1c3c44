package store

import (
	"context"
	"fmt"
	"time"
)

// Activity is one append-only log entry for a playlist-song mutation.
type Activity struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

// AddActivity appends a playlist activity entry. Entries are never updated
// or deleted afterwards.
func (s *Store) AddActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	id, err := newID("ps-activity")
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, playlistID, songID, userID, action, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ActivitiesByPlaylist returns a playlist's activity log in insertion order.
func (s *Store) ActivitiesByPlaylist(ctx context.Context, playlistID string) ([]Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, s.title, psa.action, psa.time
		FROM playlist_song_activities psa
		JOIN users u ON u.id = psa.user_id
		JOIN songs s ON s.id = psa.song_id
		WHERE psa.playlist_id = $1
		ORDER BY psa.time ASC
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var activity Activity
		if err := rows.Scan(&activity.Username, &activity.Title, &activity.Action, &activity.Time); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return activities, nil
}
