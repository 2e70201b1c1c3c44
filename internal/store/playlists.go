package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPlaylist indicates validation failure for playlist data.
	ErrInvalidPlaylist = errors.New("invalid playlist")
	// ErrPlaylistNotFound signals a missing playlist record.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrForbidden indicates the playlist exists but the caller lacks rights
	// to it.
	ErrForbidden = errors.New("not allowed to access this resource")
	// ErrSongAlreadyInPlaylist signals a duplicate playlist entry.
	ErrSongAlreadyInPlaylist = errors.New("song is already in the playlist")
	// ErrSongNotInPlaylist signals a playlist entry that does not exist.
	ErrSongNotInPlaylist = errors.New("song is not in the playlist")
)

// Playlist is the listing shape: a playlist with its owner's username.
type Playlist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistWithSongs is a playlist together with its song summaries.
type PlaylistWithSongs struct {
	Playlist
	Songs []SongSummary `json:"songs"`
}

// CreatePlaylist inserts a new playlist owned by the given user.
func (s *Store) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidPlaylist)
	}

	id, err := newID("playlist")
	if err != nil {
		return "", err
	}

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, ownerID).Scan(&id); err != nil {
		return "", fmt.Errorf("insert playlist: %w", err)
	}

	return id, nil
}

// PlaylistsForUser lists playlists the user owns or collaborates on.
func (s *Store) PlaylistsForUser(ctx context.Context, userID string) ([]Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, u.username
		FROM playlists p
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		JOIN users u ON u.id = p.owner
		WHERE p.owner = $1 OR c.user_id = $1
		GROUP BY p.id, u.username
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select playlists: %w", err)
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var playlist Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Username); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	return playlists, nil
}

// DeletePlaylist removes a playlist; collaborations, playlist entries and
// activity rows go with it via the schema.
func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlists
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// PlaylistOwner returns the owning user's id, or ErrPlaylistNotFound.
func (s *Store) PlaylistOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, `
		SELECT owner
		FROM playlists
		WHERE id = $1
	`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPlaylistNotFound
		}
		return "", fmt.Errorf("lookup playlist owner: %w", err)
	}
	return owner, nil
}

// IsCollaborator reports whether the user has a collaboration row for the
// playlist.
func (s *Store) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup collaboration: %w", err)
	}
	return true, nil
}

// PlaylistWithSongsByID returns a playlist, its owner's username and its songs.
func (s *Store) PlaylistWithSongsByID(ctx context.Context, id string) (PlaylistWithSongs, error) {
	var playlist PlaylistWithSongs
	err := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		WHERE p.id = $1
	`, id).Scan(&playlist.ID, &playlist.Name, &playlist.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlaylistWithSongs{}, ErrPlaylistNotFound
		}
		return PlaylistWithSongs{}, fmt.Errorf("select playlist: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.performer
		FROM songs s
		JOIN playlist_songs ps ON ps.song_id = s.id
		WHERE ps.playlist_id = $1
		ORDER BY s.id ASC
	`, id)
	if err != nil {
		return PlaylistWithSongs{}, fmt.Errorf("select playlist songs: %w", err)
	}
	defer rows.Close()

	playlist.Songs = []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return PlaylistWithSongs{}, fmt.Errorf("scan playlist song: %w", err)
		}
		playlist.Songs = append(playlist.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return PlaylistWithSongs{}, fmt.Errorf("iterate playlist songs: %w", err)
	}

	return playlist, nil
}

// AddPlaylistSong attaches a song to a playlist.
func (s *Store) AddPlaylistSong(ctx context.Context, playlistID, songID string) error {
	id, err := newID("playlist_song")
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO playlist_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
	`, id, playlistID, songID); err != nil {
		if isUniqueViolation(err) {
			return ErrSongAlreadyInPlaylist
		}
		return fmt.Errorf("insert playlist song: %w", err)
	}
	return nil
}

// RemovePlaylistSong detaches a song from a playlist.
func (s *Store) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
	`, playlistID, songID)
	if err != nil {
		return fmt.Errorf("delete playlist song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete playlist song: %w", err)
	}
	if affected == 0 {
		return ErrSongNotInPlaylist
	}
	return nil
}
