package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wordletracker/internal/database"
	"wordletracker/internal/models"
)

// GuessRepository persists the append-only guess log.
type GuessRepository struct {
	db *database.DB
}

// NewGuessRepository creates a new guess repository
func NewGuessRepository(db *database.DB) *GuessRepository {
	return &GuessRepository{db: db}
}

// Append inserts a scored attempt. The UNIQUE(user_id, game_date,
// guess_number) index serializes concurrent submissions: the second
// writer of a racing pair gets ErrDuplicateAttempt.
func (r *GuessRepository) Append(attempt *models.GuessAttempt) error {
	query := `
		INSERT INTO guess_attempts (user_id, game_date, guess_number, word, pattern, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	id, err := r.db.ExecReturningID(query,
		attempt.UserID,
		attempt.GameDate.String(),
		attempt.GuessNumber,
		attempt.Word,
		attempt.Pattern.Encode(),
		attempt.CreatedAt,
	)
	if err != nil {
		if r.db.Dialect.IsUniqueViolation(err) {
			return ErrDuplicateAttempt
		}
		return fmt.Errorf("failed to append guess attempt: %w", err)
	}

	attempt.ID = id
	return nil
}

// ListByUserAndDate returns a user's attempts for one date ordered by guess number
func (r *GuessRepository) ListByUserAndDate(userID string, date models.Date) ([]models.GuessAttempt, error) {
	query := `
		SELECT id, user_id, game_date, guess_number, word, pattern, created_at
		FROM guess_attempts
		WHERE user_id = ? AND game_date = ?
		ORDER BY guess_number ASC
	`

	rows, err := r.db.Query(query, userID, date.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list guess attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListByUser returns all attempts for a user ordered by date then guess number
func (r *GuessRepository) ListByUser(userID string) ([]models.GuessAttempt, error) {
	query := `
		SELECT id, user_id, game_date, guess_number, word, pattern, created_at
		FROM guess_attempts
		WHERE user_id = ?
		ORDER BY game_date ASC, guess_number ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guess attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]models.GuessAttempt, error) {
	attempts := []models.GuessAttempt{}
	for rows.Next() {
		var (
			attempt     models.GuessAttempt
			dateStr     string
			patternCode string
		)
		err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&dateStr,
			&attempt.GuessNumber,
			&attempt.Word,
			&patternCode,
			&attempt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		attempt.GameDate, err = models.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		attempt.Pattern, err = models.DecodePattern(patternCode)
		if err != nil {
			return nil, err
		}

		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}
