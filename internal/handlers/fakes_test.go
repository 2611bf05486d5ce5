package handlers

import (
	"sort"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
)

type memPuzzleStore struct {
	puzzles map[string]*models.DailyPuzzle
}

func newMemPuzzleStore() *memPuzzleStore {
	return &memPuzzleStore{puzzles: make(map[string]*models.DailyPuzzle)}
}

func (m *memPuzzleStore) GetByDate(date models.Date) (*models.DailyPuzzle, error) {
	return m.puzzles[date.String()], nil
}

func (m *memPuzzleStore) Create(puzzle *models.DailyPuzzle) error {
	m.puzzles[puzzle.GameDate.String()] = puzzle
	return nil
}

type memGuessKey struct {
	userID string
	date   string
	number int
}

type memGuessStore struct {
	attempts map[memGuessKey]models.GuessAttempt
	nextID   int64

	// forceConflict makes every Append lose the uniqueness race.
	forceConflict bool
}

func newMemGuessStore() *memGuessStore {
	return &memGuessStore{attempts: make(map[memGuessKey]models.GuessAttempt)}
}

func (m *memGuessStore) Append(attempt *models.GuessAttempt) error {
	if m.forceConflict {
		return repository.ErrDuplicateAttempt
	}
	key := memGuessKey{attempt.UserID, attempt.GameDate.String(), attempt.GuessNumber}
	if _, exists := m.attempts[key]; exists {
		return repository.ErrDuplicateAttempt
	}
	m.nextID++
	attempt.ID = m.nextID
	m.attempts[key] = *attempt
	return nil
}

func (m *memGuessStore) ListByUserAndDate(userID string, date models.Date) ([]models.GuessAttempt, error) {
	out := []models.GuessAttempt{}
	for key, attempt := range m.attempts {
		if key.userID == userID && key.date == date.String() {
			out = append(out, attempt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GuessNumber < out[j].GuessNumber })
	return out, nil
}

func (m *memGuessStore) ListByUser(userID string) ([]models.GuessAttempt, error) {
	out := []models.GuessAttempt{}
	for key, attempt := range m.attempts {
		if key.userID == userID {
			out = append(out, attempt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GameDate.Equal(out[j].GameDate) {
			return out[i].GameDate.Before(out[j].GameDate)
		}
		return out[i].GuessNumber < out[j].GuessNumber
	})
	return out, nil
}

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (m *memUserStore) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserStore) GetByID(id string) (*models.User, error) {
	return m.users[id], nil
}

func (m *memUserStore) GetByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) ListWithEmail() ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		if u.Email != "" {
			out = append(out, *u)
		}
	}
	return out, nil
}

type memLeaderboardStore struct {
	entries []models.LeaderboardEntry
}

func (m *memLeaderboardStore) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}
