package repository

import (
	"fmt"

	"wordletracker/internal/database"
	"wordletracker/internal/models"
)

// winPattern is the stored encoding of an all-correct pattern.
const winPattern = "CCCCC"

// LeaderboardRepository computes cross-user aggregates directly in SQL.
type LeaderboardRepository struct {
	db *database.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Leaderboard returns completed-game aggregates per user, ordered by
// wins descending then average guesses ascending. Only terminal games
// count: a day with a winning attempt, or six attempts without one.
func (r *LeaderboardRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT u.username,
		       COUNT(*) AS games,
		       COALESCE(SUM(o.won), 0) AS wins,
		       COALESCE(ROUND(AVG(CASE WHEN o.won = 1 THEN o.win_guess END), 2), 0) AS avg_guesses
		FROM (
			SELECT user_id, game_date,
			       MAX(CASE WHEN pattern = '` + winPattern + `' THEN 1 ELSE 0 END) AS won,
			       COUNT(*) AS attempts,
			       MIN(CASE WHEN pattern = '` + winPattern + `' THEN guess_number END) AS win_guess
			FROM guess_attempts
			GROUP BY user_id, game_date
		) o
		JOIN users u ON u.id = o.user_id
		WHERE o.won = 1 OR o.attempts >= ?
		GROUP BY u.username
		ORDER BY wins DESC, avg_guesses ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, models.MaxGuesses, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Username, &entry.Games, &entry.Wins, &entry.AvgGuesses); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
