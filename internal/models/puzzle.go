package models

import "time"

// DailyPuzzle is the hidden solution assigned to one calendar date.
// Immutable once stored; the solution is never sent to clients.
type DailyPuzzle struct {
	GameDate     Date
	PuzzleNumber int
	Solution     string
	Editor       string
	CreatedAt    time.Time
}
