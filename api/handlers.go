package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/krau/assetlist/lister"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleListAssets lists the asset directory afresh on every request.
func handleListAssets(l *lister.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		descs, err := l.List(r.Context())
		if err != nil {
			log.FromContext(r.Context()).Errorf("Failed to list assets: %v", err)
			respondError(w, err.Error(), statusForError(err))
			return
		}
		respondJSON(w, descs, http.StatusOK)
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, lister.ErrDirectoryAccess):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, ErrorResponse{Error: message}, status)
}
