package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wordletracker/internal/database"
	"wordletracker/internal/models"
)

// PuzzleRepository persists daily puzzles.
type PuzzleRepository struct {
	db *database.DB
}

// NewPuzzleRepository creates a new puzzle repository
func NewPuzzleRepository(db *database.DB) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

// GetByDate retrieves the puzzle for a date, or nil if none is stored
func (r *PuzzleRepository) GetByDate(date models.Date) (*models.DailyPuzzle, error) {
	query := `
		SELECT game_date, puzzle_number, solution, editor, created_at
		FROM daily_puzzles
		WHERE game_date = ?
	`

	puzzle := &models.DailyPuzzle{}
	var dateStr string

	err := r.db.QueryRow(query, date.String()).Scan(
		&dateStr,
		&puzzle.PuzzleNumber,
		&puzzle.Solution,
		&puzzle.Editor,
		&puzzle.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	puzzle.GameDate, err = models.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return puzzle, nil
}

// Create stores a new daily puzzle
func (r *PuzzleRepository) Create(puzzle *models.DailyPuzzle) error {
	query := `
		INSERT INTO daily_puzzles (game_date, puzzle_number, solution, editor, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if puzzle.CreatedAt.IsZero() {
		puzzle.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		puzzle.GameDate.String(),
		puzzle.PuzzleNumber,
		puzzle.Solution,
		puzzle.Editor,
		puzzle.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create puzzle: %w", err)
	}
	return nil
}
