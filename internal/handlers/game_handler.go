package handlers

import (
	"errors"
	"net/http"

	"wordletracker/internal/metrics"
	"wordletracker/internal/models"
	"wordletracker/internal/service"
)

// GameHandler handles guess submission and game state reads.
type GameHandler struct {
	gameService *service.GameService
	collector   *metrics.Collector
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService, collector *metrics.Collector) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		collector:   collector,
	}
}

type submitGuessRequest struct {
	Guess string `json:"guess"`
	Date  string `json:"date"` // optional, defaults to today (UTC)
}

// SubmitGuess handles POST /api/guess
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req submitGuessRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "invalid_body", err)
		return
	}

	date, ok := resolveDate(w, req.Date)
	if !ok {
		return
	}

	res, err := h.gameService.SubmitGuess(userID, date, req.Guess)
	if err != nil {
		h.recordGuessFailure(err)
		respondWithServiceError(w, err)
		return
	}

	h.collector.RecordGuess(true)
	if res.GameOver {
		h.collector.RecordGameCompleted(res.Win)
	}

	status := models.GameInProgress
	if res.GameOver {
		status = models.GameWon
		if !res.Win {
			status = models.GameLost
		}
	}

	respondWithJSON(w, http.StatusCreated, newSubmitGuessResponse(res, status))
}

// GetGuesses handles GET /api/guesses?date=YYYY-MM-DD
func (h *GameHandler) GetGuesses(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	date, ok := resolveDate(w, r.URL.Query().Get("date"))
	if !ok {
		return
	}

	attempts, err := h.gameService.LoadGuesses(userID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newGameStateResponse(date, attempts))
}

func (h *GameHandler) recordGuessFailure(err error) {
	h.collector.RecordGuess(false)
	if errors.Is(err, service.ErrConcurrentSubmission) {
		h.collector.RecordConflict()
	}
}

// resolveDate parses an optional date parameter, defaulting to today.
// On failure it writes a 400 and returns ok=false.
func resolveDate(w http.ResponseWriter, raw string) (models.Date, bool) {
	if raw == "" {
		return models.Today(), true
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", "invalid_date", nil)
		return models.Date{}, false
	}
	return date, true
}
