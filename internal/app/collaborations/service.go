// Package collaborations coordinates granting and revoking shared playlist
// access. Only the playlist owner may change collaborators.
package collaborations

import (
	"context"
	"errors"
)

// ErrSelfCollaboration rejects adding a playlist's owner as their own
// collaborator; ownership already grants every right a collaborator has.
var ErrSelfCollaboration = errors.New("owner cannot be added as a collaborator")

// Store captures the persistence needs for collaboration workflows.
type Store interface {
	UserExists(ctx context.Context, id string) error
	CreateCollaboration(ctx context.Context, playlistID, userID string) (string, error)
	DeleteCollaboration(ctx context.Context, playlistID, userID string) error
}

// Access verifies playlist ownership; satisfied by the playlists service.
type Access interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

// Service coordinates collaboration-related operations.
type Service interface {
	Add(ctx context.Context, playlistID, ownerID, collaboratorID string) (string, error)
	Remove(ctx context.Context, playlistID, ownerID, collaboratorID string) error
}

type service struct {
	store  Store
	access Access
}

// New constructs a Service backed by the provided Store and owner check.
func New(st Store, access Access) Service {
	return &service{store: st, access: access}
}

func (s *service) Add(ctx context.Context, playlistID, ownerID, collaboratorID string) (string, error) {
	if err := s.access.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return "", err
	}
	if err := s.store.UserExists(ctx, collaboratorID); err != nil {
		return "", err
	}
	if collaboratorID == ownerID {
		return "", ErrSelfCollaboration
	}
	return s.store.CreateCollaboration(ctx, playlistID, collaboratorID)
}

func (s *service) Remove(ctx context.Context, playlistID, ownerID, collaboratorID string) error {
	if err := s.access.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return err
	}
	return s.store.DeleteCollaboration(ctx, playlistID, collaboratorID)
}
