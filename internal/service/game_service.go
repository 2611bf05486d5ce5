package service

import (
	"errors"
	"fmt"

	"wordletracker/internal/game"
	"wordletracker/internal/models"
	"wordletracker/internal/repository"
	"wordletracker/internal/validation"
)

var (
	// ErrInvalidGuess means the submitted guess is not five letters.
	ErrInvalidGuess = errors.New("guess must be exactly 5 letters")

	// ErrPuzzleNotFound means no solution is stored for the date.
	ErrPuzzleNotFound = errors.New("no puzzle for that date")

	// ErrGameAlreadyComplete means the game was already won or all six
	// attempts are used; the submission is rejected, not retried.
	ErrGameAlreadyComplete = errors.New("game already complete")

	// ErrConcurrentSubmission means another submission claimed the same
	// guess number first. Transient: reload state and resubmit once.
	ErrConcurrentSubmission = errors.New("concurrent submission, reload and retry")
)

// GameService enforces the rules of a single user's single day's game:
// guess ordering, the six-attempt limit and terminal-state detection.
type GameService struct {
	puzzles repository.PuzzleStore
	guesses repository.GuessStore
}

// NewGameService creates a new game service
func NewGameService(puzzles repository.PuzzleStore, guesses repository.GuessStore) *GameService {
	return &GameService{
		puzzles: puzzles,
		guesses: guesses,
	}
}

// SubmitResult is a scored, persisted attempt plus the resulting game state.
type SubmitResult struct {
	Attempt  models.GuessAttempt
	Win      bool
	GameOver bool
}

// SubmitGuess validates and scores a guess, assigns the next guess
// number and appends the attempt to the log.
//
// The guess number is derived from the attempts already stored, never
// from the client. If two submissions race for the same number the
// store's uniqueness constraint lets exactly one through; the other
// fails with ErrConcurrentSubmission and nothing is written for it. A
// store failure is surfaced as-is and never counts as a scored guess.
func (s *GameService) SubmitGuess(userID string, date models.Date, rawGuess string) (*SubmitResult, error) {
	if err := validation.ValidateGuess(rawGuess); err != nil {
		return nil, ErrInvalidGuess
	}

	puzzle, err := s.puzzles.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, ErrPuzzleNotFound
	}

	attempts, err := s.guesses.ListByUserAndDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	if models.StatusOf(attempts).IsTerminal() {
		return nil, ErrGameAlreadyComplete
	}

	pattern, err := game.Evaluate(rawGuess, puzzle.Solution)
	if err != nil {
		return nil, ErrInvalidGuess
	}

	attempt := models.GuessAttempt{
		UserID:      userID,
		GameDate:    date,
		GuessNumber: len(attempts) + 1,
		Word:        normalizeGuess(rawGuess),
		Pattern:     pattern,
	}

	if err := s.guesses.Append(&attempt); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			return nil, ErrConcurrentSubmission
		}
		return nil, fmt.Errorf("failed to persist attempt: %w", err)
	}

	win := attempt.IsWin()
	return &SubmitResult{
		Attempt:  attempt,
		Win:      win,
		GameOver: win || attempt.GuessNumber >= models.MaxGuesses,
	}, nil
}

// LoadGuesses returns a user's attempts for a date ordered by guess
// number; empty slice if the game has not started.
func (s *GameService) LoadGuesses(userID string, date models.Date) ([]models.GuessAttempt, error) {
	attempts, err := s.guesses.ListByUserAndDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}
	return attempts, nil
}

func normalizeGuess(guess string) string {
	b := []byte(guess)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
