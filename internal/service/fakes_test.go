package service

import (
	"sort"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
)

// In-memory stores used across the service tests.

type fakePuzzleStore struct {
	puzzles map[string]*models.DailyPuzzle
}

func newFakePuzzleStore() *fakePuzzleStore {
	return &fakePuzzleStore{puzzles: make(map[string]*models.DailyPuzzle)}
}

func (f *fakePuzzleStore) GetByDate(date models.Date) (*models.DailyPuzzle, error) {
	return f.puzzles[date.String()], nil
}

func (f *fakePuzzleStore) Create(puzzle *models.DailyPuzzle) error {
	f.puzzles[puzzle.GameDate.String()] = puzzle
	return nil
}

type attemptKey struct {
	userID string
	date   string
	number int
}

type fakeGuessStore struct {
	attempts map[attemptKey]models.GuessAttempt
	nextID   int64

	// appendErr, when set, fails the next Append once.
	appendErr error

	// beforeAppend, when set, runs just before each Append. Used to
	// simulate a concurrent writer sneaking in.
	beforeAppend func()
}

func newFakeGuessStore() *fakeGuessStore {
	return &fakeGuessStore{attempts: make(map[attemptKey]models.GuessAttempt)}
}

func (f *fakeGuessStore) Append(attempt *models.GuessAttempt) error {
	if f.beforeAppend != nil {
		hook := f.beforeAppend
		f.beforeAppend = nil
		hook()
	}
	if f.appendErr != nil {
		err := f.appendErr
		f.appendErr = nil
		return err
	}

	key := attemptKey{attempt.UserID, attempt.GameDate.String(), attempt.GuessNumber}
	if _, exists := f.attempts[key]; exists {
		return repository.ErrDuplicateAttempt
	}

	f.nextID++
	attempt.ID = f.nextID
	f.attempts[key] = *attempt
	return nil
}

func (f *fakeGuessStore) ListByUserAndDate(userID string, date models.Date) ([]models.GuessAttempt, error) {
	out := []models.GuessAttempt{}
	for key, attempt := range f.attempts {
		if key.userID == userID && key.date == date.String() {
			out = append(out, attempt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GuessNumber < out[j].GuessNumber })
	return out, nil
}

func (f *fakeGuessStore) ListByUser(userID string) ([]models.GuessAttempt, error) {
	out := []models.GuessAttempt{}
	for key, attempt := range f.attempts {
		if key.userID == userID {
			out = append(out, attempt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GameDate != out[j].GameDate {
			return out[i].GameDate.Before(out[j].GameDate)
		}
		return out[i].GuessNumber < out[j].GuessNumber
	})
	return out, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ListWithEmail() ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		if u.Email != "" {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type fakeLeaderboardStore struct {
	entries []models.LeaderboardEntry
}

func (f *fakeLeaderboardStore) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}
