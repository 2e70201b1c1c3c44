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
	// ErrInvalidAlbum indicates validation failure for album data.
	ErrInvalidAlbum = errors.New("invalid album")
	// ErrAlbumNotFound signals a missing album record.
	ErrAlbumNotFound = errors.New("album not found")
)

// Album models a released record in the catalog.
type Album struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	CoverURL *string `json:"coverUrl"`
}

// AlbumWithSongs is an album together with the songs that reference it.
type AlbumWithSongs struct {
	Album
	Songs []SongSummary `json:"songs"`
}

// CreateAlbum inserts a new album and returns its generated identifier.
func (s *Store) CreateAlbum(ctx context.Context, name string, year int) (string, error) {
	name = strings.TrimSpace(name)
	if err := validateAlbum(name, year); err != nil {
		return "", err
	}

	id, err := newID("album")
	if err != nil {
		return "", err
	}

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO albums (id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, year).Scan(&id); err != nil {
		return "", fmt.Errorf("insert album: %w", err)
	}

	return id, nil
}

// AlbumByID returns a single album with its songs attached.
func (s *Store) AlbumByID(ctx context.Context, id string) (AlbumWithSongs, error) {
	var album AlbumWithSongs
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, year, cover_url
		FROM albums
		WHERE id = $1
	`, id).Scan(&album.ID, &album.Name, &album.Year, &album.CoverURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AlbumWithSongs{}, ErrAlbumNotFound
		}
		return AlbumWithSongs{}, fmt.Errorf("select album: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, performer
		FROM songs
		WHERE album_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return AlbumWithSongs{}, fmt.Errorf("select album songs: %w", err)
	}
	defer rows.Close()

	album.Songs = []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return AlbumWithSongs{}, fmt.Errorf("scan album song: %w", err)
		}
		album.Songs = append(album.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return AlbumWithSongs{}, fmt.Errorf("iterate album songs: %w", err)
	}

	return album, nil
}

// UpdateAlbum replaces the mutable fields of an album.
func (s *Store) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	name = strings.TrimSpace(name)
	if err := validateAlbum(name, year); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE albums
		SET name = $1, year = $2
		WHERE id = $3
	`, name, year, id)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

// SetAlbumCover records the public URL of an uploaded cover image.
func (s *Store) SetAlbumCover(ctx context.Context, id, coverURL string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE albums
		SET cover_url = $1
		WHERE id = $2
	`, coverURL, id)
	if err != nil {
		return fmt.Errorf("update album cover: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update album cover: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

// DeleteAlbum removes an album; songs keep existing with their album
// reference cleared by the schema.
func (s *Store) DeleteAlbum(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM albums
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

// AlbumExists reports ErrAlbumNotFound when no album has the given id.
func (s *Store) AlbumExists(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM albums
		WHERE id = $1
	`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAlbumNotFound
		}
		return fmt.Errorf("lookup album: %w", err)
	}
	return nil
}

func validateAlbum(name string, year int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAlbum)
	}
	if year < 1900 || year > time.Now().Year() {
		return fmt.Errorf("%w: year must be between 1900 and the current year", ErrInvalidAlbum)
	}
	return nil
}
