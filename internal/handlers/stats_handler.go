package handlers

import (
	"net/http"
	"strconv"

	"wordletracker/internal/service"
)

// StatsHandler serves per-user statistics and the leaderboard.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	summary, err := h.statsService.ComputeStats(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newStatsResponse(summary))
}

// GetLeaderboard handles GET /api/leaderboard?limit=N
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", "invalid_limit", nil)
			return
		}
		limit = n
	}

	entries, err := h.statsService.Leaderboard(limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newLeaderboardView(entries))
}
