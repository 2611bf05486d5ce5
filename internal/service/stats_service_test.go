package service

import (
	"testing"

	"wordletracker/internal/models"
)

func winPattern() models.Pattern {
	return models.Pattern{
		models.VerdictCorrect, models.VerdictCorrect, models.VerdictCorrect,
		models.VerdictCorrect, models.VerdictCorrect,
	}
}

func missPattern() models.Pattern {
	return models.Pattern{
		models.VerdictAbsent, models.VerdictAbsent, models.VerdictAbsent,
		models.VerdictAbsent, models.VerdictAbsent,
	}
}

func addAttempt(t *testing.T, store *fakeGuessStore, userID string, date models.Date, number int, pattern models.Pattern) {
	t.Helper()
	err := store.Append(&models.GuessAttempt{
		UserID:      userID,
		GameDate:    date,
		GuessNumber: number,
		Word:        "guess",
		Pattern:     pattern,
	})
	if err != nil {
		t.Fatal(err)
	}
}

// addWin records a game won in guessesUsed attempts.
func addWin(t *testing.T, store *fakeGuessStore, userID string, date models.Date, guessesUsed int) {
	t.Helper()
	for n := 1; n < guessesUsed; n++ {
		addAttempt(t, store, userID, date, n, missPattern())
	}
	addAttempt(t, store, userID, date, guessesUsed, winPattern())
}

// addLoss records a game lost after all six attempts.
func addLoss(t *testing.T, store *fakeGuessStore, userID string, date models.Date) {
	t.Helper()
	for n := 1; n <= models.MaxGuesses; n++ {
		addAttempt(t, store, userID, date, n, missPattern())
	}
}

func TestComputeStatsEmptyHistory(t *testing.T) {
	svc := NewStatsService(newFakeGuessStore(), &fakeLeaderboardStore{})

	summary, err := svc.ComputeStats("user-1")
	if err != nil {
		t.Fatal(err)
	}

	if summary.GamesPlayed != 0 || summary.Wins != 0 {
		t.Errorf("GamesPlayed = %d, Wins = %d, want 0, 0", summary.GamesPlayed, summary.Wins)
	}
	if summary.WinPct != 0 || summary.AvgGuesses != 0 {
		t.Errorf("WinPct = %v, AvgGuesses = %v, want 0, 0", summary.WinPct, summary.AvgGuesses)
	}
	for _, key := range models.DistributionKeys {
		if summary.GuessDistribution[key] != 0 {
			t.Errorf("distribution[%s] = %d, want 0", key, summary.GuessDistribution[key])
		}
	}
}

func TestComputeStatsDistributionAndRates(t *testing.T) {
	// Outcomes with guessesUsed 2, 3, 3 and one loss:
	// win_pct 75.0, avg over wins (2+3+3)/3 = 2.67.
	store := newFakeGuessStore()
	svc := NewStatsService(store, &fakeLeaderboardStore{})

	addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 2)
	addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 3)
	addWin(t, store, "user-1", mustDate(t, "2024-01-03"), 3)
	addLoss(t, store, "user-1", mustDate(t, "2024-01-04"))

	summary, err := svc.computeStatsAt("user-1", mustDate(t, "2024-01-04"))
	if err != nil {
		t.Fatal(err)
	}

	if summary.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, want 4", summary.GamesPlayed)
	}
	if summary.Wins != 3 {
		t.Errorf("Wins = %d, want 3", summary.Wins)
	}
	if summary.WinPct != 75.0 {
		t.Errorf("WinPct = %v, want 75.0", summary.WinPct)
	}
	if summary.AvgGuesses != 2.67 {
		t.Errorf("AvgGuesses = %v, want 2.67", summary.AvgGuesses)
	}

	wantDist := map[string]int{"1": 0, "2": 1, "3": 2, "4": 0, "5": 0, "6": 0, "X": 1}
	for key, want := range wantDist {
		if got := summary.GuessDistribution[key]; got != want {
			t.Errorf("distribution[%s] = %d, want %d", key, got, want)
		}
	}
}

func TestComputeStatsExcludesInProgressGames(t *testing.T) {
	store := newFakeGuessStore()
	svc := NewStatsService(store, &fakeLeaderboardStore{})

	addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 4)
	// Two non-winning attempts today: game still in progress.
	addAttempt(t, store, "user-1", mustDate(t, "2024-01-02"), 1, missPattern())
	addAttempt(t, store, "user-1", mustDate(t, "2024-01-02"), 2, missPattern())

	summary, err := svc.computeStatsAt("user-1", mustDate(t, "2024-01-02"))
	if err != nil {
		t.Fatal(err)
	}

	if summary.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1 (in-progress day excluded)", summary.GamesPlayed)
	}
	if len(summary.RecentOutcomes) != 1 {
		t.Errorf("RecentOutcomes length = %d, want 1", len(summary.RecentOutcomes))
	}
}

func TestComputeStatsStreaks(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, store *fakeGuessStore)
		today       string
		wantCurrent int
		wantMax     int
	}{
		{
			name: "gap breaks max streak and current run",
			setup: func(t *testing.T, store *fakeGuessStore) {
				addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 3)
				addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 4)
				// no outcome on 01-03
				addWin(t, store, "user-1", mustDate(t, "2024-01-04"), 2)
			},
			today:       "2024-01-04",
			wantCurrent: 1,
			wantMax:     2,
		},
		{
			name: "loss resets current streak to zero",
			setup: func(t *testing.T, store *fakeGuessStore) {
				addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 3)
				addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 4)
				addWin(t, store, "user-1", mustDate(t, "2024-01-04"), 2)
				addLoss(t, store, "user-1", mustDate(t, "2024-01-05"))
			},
			today:       "2024-01-05",
			wantCurrent: 0,
			wantMax:     2,
		},
		{
			name: "unplayed today does not break the streak",
			setup: func(t *testing.T, store *fakeGuessStore) {
				addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 3)
				addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 4)
			},
			today:       "2024-01-03",
			wantCurrent: 2,
			wantMax:     2,
		},
		{
			name: "gap between last outcome and today zeroes current",
			setup: func(t *testing.T, store *fakeGuessStore) {
				addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 3)
				addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 4)
			},
			today:       "2024-01-05",
			wantCurrent: 0,
			wantMax:     2,
		},
		{
			name: "streak resumes after loss",
			setup: func(t *testing.T, store *fakeGuessStore) {
				addWin(t, store, "user-1", mustDate(t, "2024-01-01"), 3)
				addLoss(t, store, "user-1", mustDate(t, "2024-01-02"))
				addWin(t, store, "user-1", mustDate(t, "2024-01-03"), 2)
				addWin(t, store, "user-1", mustDate(t, "2024-01-04"), 5)
				addWin(t, store, "user-1", mustDate(t, "2024-01-05"), 3)
			},
			today:       "2024-01-05",
			wantCurrent: 3,
			wantMax:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeGuessStore()
			svc := NewStatsService(store, &fakeLeaderboardStore{})
			tt.setup(t, store)

			summary, err := svc.computeStatsAt("user-1", mustDate(t, tt.today))
			if err != nil {
				t.Fatal(err)
			}

			if summary.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", summary.CurrentStreak, tt.wantCurrent)
			}
			if summary.MaxStreak != tt.wantMax {
				t.Errorf("MaxStreak = %d, want %d", summary.MaxStreak, tt.wantMax)
			}
		})
	}
}

func TestComputeStatsRecentOutcomesAscending(t *testing.T) {
	store := newFakeGuessStore()
	svc := NewStatsService(store, &fakeLeaderboardStore{})

	addWin(t, store, "user-1", mustDate(t, "2024-01-03"), 2)
	addLoss(t, store, "user-1", mustDate(t, "2024-01-01"))
	addWin(t, store, "user-1", mustDate(t, "2024-01-02"), 5)

	summary, err := svc.computeStatsAt("user-1", mustDate(t, "2024-01-03"))
	if err != nil {
		t.Fatal(err)
	}

	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(summary.RecentOutcomes) != len(wantDates) {
		t.Fatalf("RecentOutcomes length = %d, want %d", len(summary.RecentOutcomes), len(wantDates))
	}
	for i, want := range wantDates {
		if got := summary.RecentOutcomes[i].GameDate.String(); got != want {
			t.Errorf("outcome %d date = %s, want %s", i, got, want)
		}
	}
	if summary.RecentOutcomes[0].Won {
		t.Error("first outcome should be the loss")
	}
}

func TestLeaderboardDefaultsLimit(t *testing.T) {
	lb := &fakeLeaderboardStore{entries: []models.LeaderboardEntry{
		{Username: "ada", Games: 10, Wins: 9, AvgGuesses: 3.1},
		{Username: "bob", Games: 8, Wins: 5, AvgGuesses: 4.2},
	}}
	svc := NewStatsService(newFakeGuessStore(), lb)

	entries, err := svc.Leaderboard(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}
