package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/prepit-kitchen/prepit/internal/middlewares"
	"github.com/prepit-kitchen/prepit/internal/models"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints without a richer payload.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// BulkDeleteRequest lists ids to delete in one call.
// swagger:model BulkDeleteRequest
type BulkDeleteRequest struct {
	// required: true
	IDs []string `json:"ids"`
}

// BulkDeleteResponse reports the ids that could not be deleted.
// swagger:model BulkDeleteResponse
type BulkDeleteResponse struct {
	Deleted  int                    `json:"deleted"`
	Failures []models.DeleteFailure `json:"failures"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// sessionOrUnauthorized returns the request session, answering 401 when it is missing.
func sessionOrUnauthorized(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session := middlewares.SessionFromContext(r.Context())
	if session == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return session, true
}
