package models

import "time"

// User represents a player account. Identity here is deliberately minimal:
// just enough to scope guesses and stats to a user.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
