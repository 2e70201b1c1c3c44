package httpapi

import (
	"encoding/json"
	"net/http"

	"openmusic/internal/store"
)

type playlistRequest struct {
	Name string `json:"name"`
}

type playlistSongRequest struct {
	SongID string `json:"songId"`
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request, userID string) {
	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	playlistID, err := s.playlists.Create(r.Context(), req.Name, userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "", struct {
		PlaylistID string `json:"playlistId"`
	}{PlaylistID: playlistID})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request, userID string) {
	playlists, err := s.playlists.ListForUser(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		Playlists []store.Playlist `json:"playlists"`
	}{Playlists: playlists})
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request, userID string) {
	if err := s.playlists.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "playlist deleted", nil)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request, userID string) {
	playlist, err := s.playlists.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		Playlist store.PlaylistWithSongs `json:"playlist"`
	}{Playlist: playlist})
}

func (s *Server) handleAddPlaylistSong(w http.ResponseWriter, r *http.Request, userID string) {
	var req playlistSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SongID == "" {
		writeFail(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.playlists.AddSong(r.Context(), r.PathValue("id"), userID, req.SongID); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "song added to playlist", nil)
}

func (s *Server) handleRemovePlaylistSong(w http.ResponseWriter, r *http.Request, userID string) {
	var req playlistSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SongID == "" {
		writeFail(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.playlists.RemoveSong(r.Context(), r.PathValue("id"), userID, req.SongID); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "song removed from playlist", nil)
}

func (s *Server) handlePlaylistActivities(w http.ResponseWriter, r *http.Request, userID string) {
	playlistID := r.PathValue("id")
	activities, err := s.playlists.Activities(r.Context(), playlistID, userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		PlaylistID string           `json:"playlistId"`
		Activities []store.Activity `json:"activities"`
	}{PlaylistID: playlistID, Activities: activities})
}
