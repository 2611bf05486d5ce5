// Package repository provides persistence for users, puzzles and the
// append-only guess log. Services depend on the interfaces below so
// tests can substitute in-memory implementations.
package repository

import (
	"errors"

	"wordletracker/internal/models"
)

var (
	// ErrDuplicateAttempt is returned when an appended attempt collides
	// with an existing (user, date, guess number) row. The session
	// tracker surfaces this as a concurrent-submission conflict.
	ErrDuplicateAttempt = errors.New("guess attempt already exists")

	// ErrUsernameTaken is returned when creating a user with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// PuzzleStore is the read/write interface for daily puzzles.
type PuzzleStore interface {
	// GetByDate returns the puzzle for a date, or nil if none is stored.
	GetByDate(date models.Date) (*models.DailyPuzzle, error)

	// Create stores a puzzle. A puzzle is immutable once stored.
	Create(puzzle *models.DailyPuzzle) error
}

// GuessStore is the interface over the append-only guess log.
type GuessStore interface {
	// Append persists a scored attempt. The (user, date, guess number)
	// uniqueness constraint makes exactly one of two racing writers
	// succeed; the loser gets ErrDuplicateAttempt.
	Append(attempt *models.GuessAttempt) error

	// ListByUserAndDate returns a user's attempts for one date, ordered
	// by guess number. Empty slice if none.
	ListByUserAndDate(userID string, date models.Date) ([]models.GuessAttempt, error)

	// ListByUser returns all of a user's attempts across all dates,
	// ordered by date then guess number.
	ListByUser(userID string) ([]models.GuessAttempt, error)
}

// UserStore is the minimal identity interface.
type UserStore interface {
	// Create stores a new user. Returns ErrUsernameTaken on collision.
	Create(user *models.User) error

	// GetByID returns a user by ID, or nil if not found.
	GetByID(id string) (*models.User, error)

	// GetByUsername returns a user by username, or nil if not found.
	GetByUsername(username string) (*models.User, error)

	// ListWithEmail returns all users that have an email address set.
	ListWithEmail() ([]models.User, error)
}

// LeaderboardStore computes the cross-user leaderboard.
type LeaderboardStore interface {
	// Leaderboard returns per-user completed-game aggregates ordered by
	// wins descending, then average guesses ascending.
	Leaderboard(limit int) ([]models.LeaderboardEntry, error)
}
