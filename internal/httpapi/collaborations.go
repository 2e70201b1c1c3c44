package httpapi

import (
	"encoding/json"
	"net/http"
)

type collaborationRequest struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request, userID string) {
	var req collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlaylistID == "" || req.UserID == "" {
		writeFail(w, http.StatusBadRequest, "playlistId and userId are required")
		return
	}

	collaborationID, err := s.collaborations.Add(r.Context(), req.PlaylistID, userID, req.UserID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "collaborator added", struct {
		CollaborationID string `json:"collaborationId"`
	}{CollaborationID: collaborationID})
}

func (s *Server) handleRemoveCollaboration(w http.ResponseWriter, r *http.Request, userID string) {
	var req collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlaylistID == "" || req.UserID == "" {
		writeFail(w, http.StatusBadRequest, "playlistId and userId are required")
		return
	}

	if err := s.collaborations.Remove(r.Context(), req.PlaylistID, userID, req.UserID); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "collaborator removed", nil)
}
