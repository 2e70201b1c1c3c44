package httpapi

import (
	"encoding/json"
	"net/http"

	"openmusic/internal/store"
)

type songRequest struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (r songRequest) song() store.Song {
	return store.Song{
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Performer: r.Performer,
		Duration:  r.Duration,
		AlbumID:   r.AlbumID,
	}
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	songID, err := s.songs.Create(r.Context(), req.song())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "", struct {
		SongID string `json:"songId"`
	}{SongID: songID})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	songs, err := s.songs.List(r.Context(), query.Get("title"), query.Get("performer"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		Songs []store.SongSummary `json:"songs"`
	}{Songs: songs})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.songs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		Song store.Song `json:"song"`
	}{Song: song})
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.songs.Update(r.Context(), r.PathValue("id"), req.song()); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "song updated", nil)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.songs.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "song deleted", nil)
}
