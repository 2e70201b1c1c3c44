package httpapi

import (
	"encoding/json"
	"net/http"
)

type albumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	albumID, err := s.albums.Create(r.Context(), req.Name, req.Year)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "", struct {
		AlbumID string `json:"albumId"`
	}{AlbumID: albumID})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.albums.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", struct {
		Album any `json:"album"`
	}{Album: album})
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.albums.Update(r.Context(), r.PathValue("id"), req.Name, req.Year); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "album updated", nil)
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := s.albums.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "album deleted", nil)
}

// maxCoverMemory bounds the multipart parse buffer; anything above spills to
// temp files.
const maxCoverMemory = 1 << 20

func (s *Server) handleUploadAlbumCover(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCoverMemory); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		writeFail(w, http.StatusBadRequest, "cover file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, err := s.albums.UploadCover(r.Context(), r.PathValue("id"), contentType, header.Size, file); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "cover uploaded", nil)
}

func (s *Server) handleToggleAlbumLike(w http.ResponseWriter, r *http.Request, userID string) {
	wasLiked, err := s.albums.ToggleLike(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	message := "album liked"
	if wasLiked {
		message = "album like removed"
	}
	writeSuccess(w, http.StatusCreated, message, nil)
}

func (s *Server) handleAlbumLikes(w http.ResponseWriter, r *http.Request) {
	count, fromCache, err := s.albums.LikeCount(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if fromCache {
		w.Header().Set("X-Data-Source", "cache")
	}
	writeSuccess(w, http.StatusOK, "", struct {
		Likes int `json:"likes"`
	}{Likes: count})
}
