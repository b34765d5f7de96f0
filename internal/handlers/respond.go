package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the envelope for every error the API returns.
type errorResponse struct {
	Message string `json:"message"`
}

// successResponse acknowledges mutations that return no entity.
type successResponse struct {
	Success bool `json:"success"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondMessage writes a {message} error envelope with the given status code.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// respondSuccess writes the {success:true} acknowledgement.
func respondSuccess(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

// decodeJSON decodes the request body into dst. On failure it writes a 400
// and returns false — callers just return.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "Permintaan tidak valid")
		return false
	}
	return true
}
