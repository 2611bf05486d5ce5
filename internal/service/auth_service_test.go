package service

import (
	"errors"
	"testing"
	"time"

	"wordletracker/internal/security"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	tokens, err := security.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	users := newFakeUserStore()
	return NewAuthService(users, tokens), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, token, err := svc.Register("ada", "correcthorse", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.PasswordHash == "correcthorse" {
		t.Error("password must not be stored in plaintext")
	}
	if token == "" {
		t.Error("expected a session token")
	}

	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != user.ID {
		t.Errorf("token subject = %s, want %s", userID, user.ID)
	}

	loggedIn, token2, err := svc.Login("ada", "correcthorse")
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %s, want %s", loggedIn.ID, user.ID)
	}
	if token2 == "" {
		t.Error("expected a session token on login")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, err := svc.Register("ada", "correcthorse", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Register("ada", "otherpassword", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("error = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
		email    string
	}{
		{name: "username too short", username: "ab", password: "correcthorse"},
		{name: "username bad chars", username: "ada lovelace", password: "correcthorse"},
		{name: "password too short", username: "ada", password: "short"},
		{name: "bad email", username: "ada", password: "correcthorse", email: "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Register(tt.username, tt.password, tt.email); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, err := svc.Register("ada", "correcthorse", ""); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login("ada", "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody", "correcthorse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: error = %v, want ErrInvalidCredentials", err)
	}
}
