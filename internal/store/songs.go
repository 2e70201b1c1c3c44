package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidSong indicates validation failure for song data.
	ErrInvalidSong = errors.New("invalid song")
	// ErrSongNotFound signals a missing song record.
	ErrSongNotFound = errors.New("song not found")
)

// Song models a single track, optionally attached to an album.
type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

// SongSummary is the short listing shape used by search results and
// album/playlist song listings.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// CreateSong inserts a new song. A non-nil album reference must point at an
// existing album.
func (s *Store) CreateSong(ctx context.Context, song Song) (string, error) {
	song.Title = strings.TrimSpace(song.Title)
	if err := validateSong(song); err != nil {
		return "", err
	}
	if song.AlbumID != nil {
		if err := s.AlbumExists(ctx, *song.AlbumID); err != nil {
			return "", err
		}
	}

	id, err := newID("song")
	if err != nil {
		return "", err
	}

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, id, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID).Scan(&id); err != nil {
		return "", fmt.Errorf("insert song: %w", err)
	}

	return id, nil
}

// ListSongs returns song summaries matching the optional title and performer
// substring filters.
func (s *Store) ListSongs(ctx context.Context, title, performer string) ([]SongSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, performer
		FROM songs
		WHERE title ILIKE $1 AND performer ILIKE $2
		ORDER BY id ASC
	`, "%"+title+"%", "%"+performer+"%")
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	songs := []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, nil
}

// SongByID returns a single song by its identifier.
func (s *Store) SongByID(ctx context.Context, id string) (Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs
		WHERE id = $1
	`, id).Scan(&song.ID, &song.Title, &song.Year, &song.Genre, &song.Performer, &song.Duration, &song.AlbumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Song{}, ErrSongNotFound
		}
		return Song{}, fmt.Errorf("select song: %w", err)
	}
	return song, nil
}

// UpdateSong replaces the mutable fields of a song.
func (s *Store) UpdateSong(ctx context.Context, id string, song Song) error {
	song.Title = strings.TrimSpace(song.Title)
	if err := validateSong(song); err != nil {
		return err
	}
	if song.AlbumID != nil {
		if err := s.AlbumExists(ctx, *song.AlbumID); err != nil {
			return err
		}
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET title = $1, year = $2, genre = $3, performer = $4, duration = $5, album_id = $6
		WHERE id = $7
	`, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID, id)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	if affected == 0 {
		return ErrSongNotFound
	}
	return nil
}

// DeleteSong removes a song.
func (s *Store) DeleteSong(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM songs
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if affected == 0 {
		return ErrSongNotFound
	}
	return nil
}

// SongExists reports ErrSongNotFound when no song has the given id.
func (s *Store) SongExists(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM songs
		WHERE id = $1
	`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSongNotFound
		}
		return fmt.Errorf("lookup song: %w", err)
	}
	return nil
}

func validateSong(song Song) error {
	if song.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidSong)
	}
	if song.Genre == "" {
		return fmt.Errorf("%w: genre is required", ErrInvalidSong)
	}
	if song.Performer == "" {
		return fmt.Errorf("%w: performer is required", ErrInvalidSong)
	}
	if song.Year < 1900 || song.Year > time.Now().Year() {
		return fmt.Errorf("%w: year must be between 1900 and the current year", ErrInvalidSong)
	}
	if song.Duration != nil && *song.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidSong)
	}
	return nil
}
