package handlers

import (
	"net/http"

	"wordletracker/internal/database"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz handles GET /api/healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Database unavailable", "db_unavailable", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
