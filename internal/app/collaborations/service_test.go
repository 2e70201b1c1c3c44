package collaborations

import (
	"context"
	"errors"
	"testing"

	"openmusic/internal/store"
)

type fakeCollabStore struct {
	users   map[string]bool
	created map[string]bool
}

func newFakeCollabStore(users ...string) *fakeCollabStore {
	f := &fakeCollabStore{users: map[string]bool{}, created: map[string]bool{}}
	for _, u := range users {
		f.users[u] = true
	}
	return f
}

func (f *fakeCollabStore) UserExists(ctx context.Context, id string) error {
	if !f.users[id] {
		return store.ErrUserNotFound
	}
	return nil
}

func (f *fakeCollabStore) CreateCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	key := playlistID + ":" + userID
	if f.created[key] {
		return "", store.ErrCollaborationExists
	}
	f.created[key] = true
	return "collab-1", nil
}

func (f *fakeCollabStore) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	key := playlistID + ":" + userID
	if !f.created[key] {
		return store.ErrCollaborationNotFound
	}
	delete(f.created, key)
	return nil
}

type fakeAccess struct {
	owners map[string]string
}

func (f *fakeAccess) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	owner, ok := f.owners[playlistID]
	if !ok {
		return store.ErrPlaylistNotFound
	}
	if owner != userID {
		return store.ErrForbidden
	}
	return nil
}

func TestAddCollaborator(t *testing.T) {
	st := newFakeCollabStore("user-owner", "user-friend")
	access := &fakeAccess{owners: map[string]string{"playlist-1": "user-owner"}}
	svc := New(st, access)
	ctx := context.Background()

	id, err := svc.Add(ctx, "playlist-1", "user-owner", "user-friend")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == "" {
		t.Fatal("expected a collaboration id")
	}

	if _, err := svc.Add(ctx, "playlist-1", "user-owner", "user-friend"); !errors.Is(err, store.ErrCollaborationExists) {
		t.Fatalf("expected ErrCollaborationExists but got %v", err)
	}
}

func TestAddCollaboratorRequiresOwner(t *testing.T) {
	st := newFakeCollabStore("user-owner", "user-friend")
	access := &fakeAccess{owners: map[string]string{"playlist-1": "user-owner"}}
	svc := New(st, access)

	if _, err := svc.Add(context.Background(), "playlist-1", "user-friend", "user-friend"); !errors.Is(err, store.ErrForbidden) {
		t.Fatalf("expected ErrForbidden but got %v", err)
	}
	if len(st.created) != 0 {
		t.Fatal("collaboration created by a non-owner")
	}
}

func TestAddCollaboratorMissingPlaylist(t *testing.T) {
	st := newFakeCollabStore("user-owner", "user-friend")
	access := &fakeAccess{owners: map[string]string{}}
	svc := New(st, access)

	if _, err := svc.Add(context.Background(), "playlist-missing", "user-owner", "user-friend"); !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound but got %v", err)
	}
}

func TestAddCollaboratorMissingUser(t *testing.T) {
	st := newFakeCollabStore("user-owner")
	access := &fakeAccess{owners: map[string]string{"playlist-1": "user-owner"}}
	svc := New(st, access)

	if _, err := svc.Add(context.Background(), "playlist-1", "user-owner", "user-missing"); !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound but got %v", err)
	}
}

func TestAddSelfCollaboration(t *testing.T) {
	st := newFakeCollabStore("user-owner")
	access := &fakeAccess{owners: map[string]string{"playlist-1": "user-owner"}}
	svc := New(st, access)

	if _, err := svc.Add(context.Background(), "playlist-1", "user-owner", "user-owner"); !errors.Is(err, ErrSelfCollaboration) {
		t.Fatalf("expected ErrSelfCollaboration but got %v", err)
	}
}

func TestRemoveCollaborator(t *testing.T) {
	st := newFakeCollabStore("user-owner", "user-friend")
	access := &fakeAccess{owners: map[string]string{"playlist-1": "user-owner"}}
	svc := New(st, access)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "playlist-1", "user-owner", "user-friend"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, "playlist-1", "user-owner", "user-friend"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := svc.Remove(ctx, "playlist-1", "user-owner", "user-friend"); !errors.Is(err, store.ErrCollaborationNotFound) {
		t.Fatalf("expected ErrCollaborationNotFound but got %v", err)
	}
}
