package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wordletracker/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondWithError(w http.ResponseWriter, status int, userMsg, code string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}

	respondWithJSON(w, status, errorResponse{Error: userMsg, Code: code})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithServiceError maps service sentinel errors onto HTTP
// statuses and stable error codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidGuess):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_guess"})
	case errors.Is(err, service.ErrPuzzleNotFound):
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: "No puzzle for that date", Code: "puzzle_not_found"})
	case errors.Is(err, service.ErrGameAlreadyComplete):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: "Game already complete", Code: "game_complete"})
	case errors.Is(err, service.ErrConcurrentSubmission):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: "Guess already submitted, reload and retry", Code: "concurrent_submission"})
	case errors.Is(err, service.ErrUsernameTaken):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: "Username already taken", Code: "username_taken"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid username or password", Code: "invalid_credentials"})
	case errors.Is(err, service.ErrInvalidInput):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "internal_error", err)
	}
}
