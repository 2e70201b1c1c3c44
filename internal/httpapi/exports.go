package httpapi

import (
	"encoding/json"
	"net/http"
)

type exportRequest struct {
	TargetEmail string `json:"targetEmail"`
}

func (s *Server) handleExportPlaylist(w http.ResponseWriter, r *http.Request, userID string) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.exports.Export(r.Context(), r.PathValue("id"), userID, req.TargetEmail); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "export request queued", nil)
}
