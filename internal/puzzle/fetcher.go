// Package puzzle fetches the daily solution from the upstream feed and
// stores it for the evaluator to use.
package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
	"wordletracker/internal/validation"
)

// ErrFeedUnavailable means the upstream feed did not return a puzzle.
var ErrFeedUnavailable = errors.New("puzzle feed unavailable")

// feedResponse is the upstream JSON shape.
type feedResponse struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	Editor          string `json:"editor"`
	DaysSinceLaunch int    `json:"days_since_launch"`
}

// Fetcher pulls one day's puzzle from the feed and persists it.
type Fetcher struct {
	baseURL string
	client  *http.Client
	puzzles repository.PuzzleStore
}

// NewFetcher creates a new fetcher against baseURL.
func NewFetcher(baseURL string, puzzles repository.PuzzleStore) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		puzzles: puzzles,
	}
}

// FetchAndStore fetches the puzzle for date and stores it. If a puzzle
// for that date already exists nothing is fetched and (existing, false)
// is returned; otherwise the stored puzzle and true.
func (f *Fetcher) FetchAndStore(ctx context.Context, date models.Date) (*models.DailyPuzzle, bool, error) {
	existing, err := f.puzzles.GetByDate(date)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing puzzle: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	feed, err := f.fetch(ctx, date)
	if err != nil {
		return nil, false, err
	}

	solution := feed.Solution
	if err := validation.ValidateGuess(solution); err != nil {
		return nil, false, fmt.Errorf("feed returned invalid solution %q: %w", solution, err)
	}
	if feed.PrintDate != date.String() {
		return nil, false, fmt.Errorf("feed date mismatch: want %s, got %s", date, feed.PrintDate)
	}

	stored := &models.DailyPuzzle{
		GameDate:     date,
		PuzzleNumber: feed.DaysSinceLaunch,
		Solution:     normalize(solution),
		Editor:       feed.Editor,
	}
	if err := f.puzzles.Create(stored); err != nil {
		return nil, false, fmt.Errorf("failed to store puzzle: %w", err)
	}

	return stored, true, nil
}

func (f *Fetcher) fetch(ctx context.Context, date models.Date) (*feedResponse, error) {
	url := fmt.Sprintf("%s/v2/%s.json", f.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	return &feed, nil
}

func normalize(word string) string {
	b := []byte(word)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
