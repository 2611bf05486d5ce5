// Package validation holds input checks applied at the handler and
// service boundaries, before anything touches the database.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"wordletracker/internal/models"
)

var (
	ErrGuessLength   = errors.New("guess must be exactly 5 letters")
	ErrGuessAlpha    = errors.New("guess may only contain letters a-z")
	ErrUsernameEmpty = errors.New("username is required")
)

// ValidateGuess checks that a raw guess is exactly five alphabetic
// characters. It does not consult a dictionary; word validity is the
// client's concern.
func ValidateGuess(guess string) error {
	if len(guess) != models.WordLength {
		return ErrGuessLength
	}
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return ErrGuessAlpha
		}
	}
	return nil
}

// ValidateUsername checks username length and characters
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameEmpty
	}
	if len(username) < 3 || len(username) > 32 {
		return errors.New("username must be 3-32 characters")
	}
	for _, c := range username {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("username contains invalid character %q", c)
		}
	}
	return nil
}

// ValidatePassword checks minimum password requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return errors.New("password must be at most 72 characters")
	}
	return nil
}

// ValidateEmail performs a light-weight shape check; the address is only
// used for optional reminder mail, so deliverability is not verified.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("invalid email address")
	}
	if strings.ContainsAny(email, " \t") {
		return errors.New("invalid email address")
	}
	if !strings.Contains(email[at+1:], ".") {
		return errors.New("invalid email address")
	}
	return nil
}
