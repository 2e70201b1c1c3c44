package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"openmusic/internal/app/albums"
	"openmusic/internal/app/auth"
	"openmusic/internal/app/collaborations"
	"openmusic/internal/app/exports"
	"openmusic/internal/store"
)

// response is the API envelope: status is "success" for 2xx, "fail" for
// client errors and "error" for server errors.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, response{Status: "success", Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Status: "fail", Message: message})
}

var notFoundErrors = []error{
	store.ErrAlbumNotFound,
	store.ErrSongNotFound,
	store.ErrUserNotFound,
	store.ErrPlaylistNotFound,
	store.ErrSongNotInPlaylist,
}

var validationErrors = []error{
	store.ErrInvalidAlbum,
	store.ErrInvalidSong,
	store.ErrInvalidUser,
	store.ErrInvalidPlaylist,
	store.ErrUserExists,
	store.ErrSongAlreadyInPlaylist,
	store.ErrCollaborationExists,
	store.ErrCollaborationNotFound,
	store.ErrRefreshTokenInvalid,
	albums.ErrInvalidCover,
	collaborations.ErrSelfCollaboration,
	exports.ErrInvalidTarget,
}

// respondError maps domain errors onto the three client-caused outcomes and
// hides everything else behind an opaque 500.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
	}
	if errors.Is(err, store.ErrForbidden) {
		writeFail(w, http.StatusForbidden, err.Error())
		return
	}
	if errors.Is(err, store.ErrInvalidCredentials) || errors.Is(err, auth.ErrTokenInvalid) {
		writeFail(w, http.StatusUnauthorized, err.Error())
		return
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, response{
		Status:  "error",
		Message: "something went wrong on our end",
	})
}

func parseBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// withUser authenticates the request and hands the resolved user id to next.
func (s *Server) withUser(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := parseBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeFail(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, err := s.tokens.VerifyAccess(token)
		if err != nil {
			writeFail(w, http.StatusUnauthorized, "invalid or expired access token")
			return
		}
		next(w, r, userID)
	}
}
