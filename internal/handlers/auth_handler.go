package handlers

import (
	"encoding/json"
	"net/http"

	"wordletracker/internal/models"
	"wordletracker/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "invalid_body", err)
		return
	}

	user, token, err := h.authService.Register(req.Username, req.Password, req.Email)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, newAuthResponse(user, token))
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "invalid_body", err)
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newAuthResponse(user, token))
}

func newAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User: UserView{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}
