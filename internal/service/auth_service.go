package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
	"wordletracker/internal/security"
	"wordletracker/internal/validation"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// AuthService handles the minimal identity layer: registration, login
// and token validation. Everything else in the system only sees userId.
type AuthService struct {
	users  repository.UserStore
	tokens *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserStore, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account and returns the user with a session token.
// Email is optional; when set it is used for streak reminder mail.
func (s *AuthService) Register(username, password, email string) (*models.User, string, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken returns the user ID a session token was issued for.
func (s *AuthService) ValidateToken(token string) (string, error) {
	return s.tokens.Validate(token)
}
