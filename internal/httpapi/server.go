// Package httpapi wires HTTP routes to the application services and maps
// domain errors onto status codes.
package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"openmusic/internal/app/auth"
	"openmusic/internal/app/playlists"
	"openmusic/internal/store"
)

// AlbumService exposes album workflows including the cached like count.
type AlbumService interface {
	Create(ctx context.Context, name string, year int) (string, error)
	Get(ctx context.Context, id string) (store.AlbumWithSongs, error)
	Update(ctx context.Context, id, name string, year int) error
	Delete(ctx context.Context, id string) error
	UploadCover(ctx context.Context, id, contentType string, size int64, r io.Reader) (string, error)
	ToggleLike(ctx context.Context, userID, albumID string) (bool, error)
	LikeCount(ctx context.Context, albumID string) (count int, fromCache bool, err error)
}

// SongService exposes track-level catalog workflows.
type SongService interface {
	Create(ctx context.Context, song store.Song) (string, error)
	List(ctx context.Context, title, performer string) ([]store.SongSummary, error)
	Get(ctx context.Context, id string) (store.Song, error)
	Update(ctx context.Context, id string, song store.Song) error
	Delete(ctx context.Context, id string) error
}

// UserService exposes account registration.
type UserService interface {
	Register(ctx context.Context, username, password, fullname string) (string, error)
}

// AuthService exposes login, refresh and logout.
type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

// PlaylistService exposes playlist workflows guarded by the access evaluator.
type PlaylistService interface {
	Create(ctx context.Context, name, ownerID string) (string, error)
	ListForUser(ctx context.Context, userID string) ([]store.Playlist, error)
	Delete(ctx context.Context, playlistID, userID string) error
	Get(ctx context.Context, playlistID, userID string) (store.PlaylistWithSongs, error)
	AddSong(ctx context.Context, playlistID, userID, songID string) error
	RemoveSong(ctx context.Context, playlistID, userID, songID string) error
	Activities(ctx context.Context, playlistID, userID string) ([]store.Activity, error)
	Access(ctx context.Context, playlistID, userID string) (playlists.Role, error)
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

// CollaborationService exposes collaborator management.
type CollaborationService interface {
	Add(ctx context.Context, playlistID, ownerID, collaboratorID string) (string, error)
	Remove(ctx context.Context, playlistID, ownerID, collaboratorID string) error
}

// ExportService dispatches playlist export jobs.
type ExportService interface {
	Export(ctx context.Context, playlistID, userID, targetEmail string) error
}

// TokenVerifier resolves a bearer token to the authenticated user id.
type TokenVerifier interface {
	VerifyAccess(token string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	albums         AlbumService
	songs          SongService
	users          UserService
	auth           AuthService
	playlists      PlaylistService
	collaborations CollaborationService
	exports        ExportService
	tokens         TokenVerifier
	log            zerolog.Logger
}

// New configures a Server with the given services.
func New(
	albums AlbumService,
	songs SongService,
	users UserService,
	authSvc AuthService,
	playlistsSvc PlaylistService,
	collaborations CollaborationService,
	exports ExportService,
	tokens TokenVerifier,
	log zerolog.Logger,
) *Server {
	return &Server{
		albums:         albums,
		songs:          songs,
		users:          users,
		auth:           authSvc,
		playlists:      playlistsSvc,
		collaborations: collaborations,
		exports:        exports,
		tokens:         tokens,
		log:            log,
	}
}

// Routes exposes the HTTP handlers for the catalog API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /albums", s.handleCreateAlbum)
	mux.HandleFunc("GET /albums/{id}", s.handleGetAlbum)
	mux.HandleFunc("PUT /albums/{id}", s.handleUpdateAlbum)
	mux.HandleFunc("DELETE /albums/{id}", s.handleDeleteAlbum)
	mux.HandleFunc("POST /albums/{id}/covers", s.handleUploadAlbumCover)
	mux.HandleFunc("POST /albums/{id}/likes", s.withUser(s.handleToggleAlbumLike))
	mux.HandleFunc("GET /albums/{id}/likes", s.handleAlbumLikes)

	mux.HandleFunc("POST /songs", s.handleCreateSong)
	mux.HandleFunc("GET /songs", s.handleListSongs)
	mux.HandleFunc("GET /songs/{id}", s.handleGetSong)
	mux.HandleFunc("PUT /songs/{id}", s.handleUpdateSong)
	mux.HandleFunc("DELETE /songs/{id}", s.handleDeleteSong)

	mux.HandleFunc("POST /users", s.handleRegisterUser)

	mux.HandleFunc("POST /authentications", s.handleLogin)
	mux.HandleFunc("PUT /authentications", s.handleRefreshToken)
	mux.HandleFunc("DELETE /authentications", s.handleLogout)

	mux.HandleFunc("POST /playlists", s.withUser(s.handleCreatePlaylist))
	mux.HandleFunc("GET /playlists", s.withUser(s.handleListPlaylists))
	mux.HandleFunc("DELETE /playlists/{id}", s.withUser(s.handleDeletePlaylist))
	mux.HandleFunc("POST /playlists/{id}/songs", s.withUser(s.handleAddPlaylistSong))
	mux.HandleFunc("GET /playlists/{id}/songs", s.withUser(s.handleGetPlaylist))
	mux.HandleFunc("DELETE /playlists/{id}/songs", s.withUser(s.handleRemovePlaylistSong))
	mux.HandleFunc("GET /playlists/{id}/activities", s.withUser(s.handlePlaylistActivities))

	mux.HandleFunc("POST /collaborations", s.withUser(s.handleAddCollaboration))
	mux.HandleFunc("DELETE /collaborations", s.withUser(s.handleRemoveCollaboration))

	mux.HandleFunc("POST /export/playlists/{id}", s.withUser(s.handleExportPlaylist))

	return mux
}
