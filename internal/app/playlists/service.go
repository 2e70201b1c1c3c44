// Package playlists coordinates playlist workflows and decides who may
// touch a playlist: the owner, a collaborator, or nobody.
package playlists

import (
	"context"

	"openmusic/internal/store"
)

// Role is the access level granted to a user on a playlist.
type Role int

const (
	// RoleOwner marks the playlist's owning user.
	RoleOwner Role = iota + 1
	// RoleCollaborator marks a user with a collaboration row.
	RoleCollaborator
)

const (
	actionAdd    = "add"
	actionDelete = "delete"
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, name, ownerID string) (string, error)
	PlaylistsForUser(ctx context.Context, userID string) ([]store.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	PlaylistOwner(ctx context.Context, id string) (string, error)
	IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error)
	PlaylistWithSongsByID(ctx context.Context, id string) (store.PlaylistWithSongs, error)
	AddPlaylistSong(ctx context.Context, playlistID, songID string) error
	RemovePlaylistSong(ctx context.Context, playlistID, songID string) error
	SongExists(ctx context.Context, id string) error
	AddActivity(ctx context.Context, playlistID, songID, userID, action string) error
	ActivitiesByPlaylist(ctx context.Context, playlistID string) ([]store.Activity, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	Create(ctx context.Context, name, ownerID string) (string, error)
	ListForUser(ctx context.Context, userID string) ([]store.Playlist, error)
	Delete(ctx context.Context, playlistID, userID string) error
	Get(ctx context.Context, playlistID, userID string) (store.PlaylistWithSongs, error)
	AddSong(ctx context.Context, playlistID, userID, songID string) error
	RemoveSong(ctx context.Context, playlistID, userID, songID string) error
	Activities(ctx context.Context, playlistID, userID string) ([]store.Activity, error)
	Access(ctx context.Context, playlistID, userID string) (Role, error)
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(st Store) Service {
	return &service{store: st}
}

// Access evaluates a user's effective access to a playlist. A missing
// playlist is always reported as store.ErrPlaylistNotFound, even for users
// who would otherwise never have had access; only when the playlist exists
// and the user is neither owner nor collaborator does it report
// store.ErrForbidden.
func (s *service) Access(ctx context.Context, playlistID, userID string) (Role, error) {
	owner, err := s.store.PlaylistOwner(ctx, playlistID)
	if err != nil {
		return 0, err
	}
	if owner == userID {
		return RoleOwner, nil
	}

	collaborator, err := s.store.IsCollaborator(ctx, playlistID, userID)
	if err != nil {
		return 0, err
	}
	if collaborator {
		return RoleCollaborator, nil
	}
	return 0, store.ErrForbidden
}

// VerifyOwner allows exactly the owner through; collaborators are rejected.
// Used for destructive operations: playlist delete, collaboration changes,
// export.
func (s *service) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	owner, err := s.store.PlaylistOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if owner != userID {
		return store.ErrForbidden
	}
	return nil
}

func (s *service) Create(ctx context.Context, name, ownerID string) (string, error) {
	return s.store.CreatePlaylist(ctx, name, ownerID)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]store.Playlist, error) {
	return s.store.PlaylistsForUser(ctx, userID)
}

func (s *service) Delete(ctx context.Context, playlistID, userID string) error {
	if err := s.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, playlistID)
}

func (s *service) Get(ctx context.Context, playlistID, userID string) (store.PlaylistWithSongs, error) {
	if _, err := s.Access(ctx, playlistID, userID); err != nil {
		return store.PlaylistWithSongs{}, err
	}
	return s.store.PlaylistWithSongsByID(ctx, playlistID)
}

func (s *service) AddSong(ctx context.Context, playlistID, userID, songID string) error {
	if _, err := s.Access(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.store.SongExists(ctx, songID); err != nil {
		return err
	}
	if err := s.store.AddPlaylistSong(ctx, playlistID, songID); err != nil {
		return err
	}
	// Recorded only after the mutation committed, never on failure.
	return s.store.AddActivity(ctx, playlistID, songID, userID, actionAdd)
}

func (s *service) RemoveSong(ctx context.Context, playlistID, userID, songID string) error {
	if _, err := s.Access(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.store.SongExists(ctx, songID); err != nil {
		return err
	}
	if err := s.store.RemovePlaylistSong(ctx, playlistID, songID); err != nil {
		return err
	}
	return s.store.AddActivity(ctx, playlistID, songID, userID, actionDelete)
}

func (s *service) Activities(ctx context.Context, playlistID, userID string) ([]store.Activity, error) {
	if _, err := s.Access(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	return s.store.ActivitiesByPlaylist(ctx, playlistID)
}
