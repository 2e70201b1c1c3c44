package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPlaylistOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT owner
		FROM playlists
		WHERE id = $1
	`)).
		WithArgs("playlist-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-1"))

	owner, err := s.PlaylistOwner(context.Background(), "playlist-1")
	if err != nil {
		t.Fatalf("PlaylistOwner: %v", err)
	}
	if owner != "user-1" {
		t.Fatalf("unexpected owner %q", owner)
	}
}

func TestPlaylistOwnerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT owner
		FROM playlists
		WHERE id = $1
	`)).
		WithArgs("playlist-missing").
		WillReturnRows(sqlmock.NewRows([]string{"owner"}))

	if _, err := s.PlaylistOwner(context.Background(), "playlist-missing"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound but got %v", err)
	}
}

func TestIsCollaborator(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{
			name: "registered collaborator",
			rows: sqlmock.NewRows([]string{"id"}).AddRow("collab-1"),
			want: true,
		},
		{
			name: "stranger",
			rows: sqlmock.NewRows([]string{"id"}),
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New: %v", err)
			}
			defer db.Close()

			s := New(db)

			mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id
		FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`)).
				WithArgs("playlist-1", "user-2").
				WillReturnRows(tc.rows)

			got, err := s.IsCollaborator(context.Background(), "playlist-1", "user-2")
			if err != nil {
				t.Fatalf("IsCollaborator: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRemovePlaylistSongNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
	`)).
		WithArgs("playlist-1", "song-absent").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.RemovePlaylistSong(context.Background(), "playlist-1", "song-absent"); !errors.Is(err, ErrSongNotInPlaylist) {
		t.Fatalf("expected ErrSongNotInPlaylist but got %v", err)
	}
}
