package models

// GameOutcome is the completed result of one game day for one user.
// Derived from the attempt log, never stored directly.
type GameOutcome struct {
	UserID      string
	GameDate    Date
	Won         bool
	GuessesUsed int
}

// OutcomeOf derives the outcome for one day's ordered attempts.
// The second return is false while the game is still in progress
// (fewer than six attempts, none winning); in-progress days are
// excluded from completed-game statistics.
func OutcomeOf(attempts []GuessAttempt) (GameOutcome, bool) {
	if len(attempts) == 0 {
		return GameOutcome{}, false
	}
	out := GameOutcome{
		UserID:   attempts[0].UserID,
		GameDate: attempts[0].GameDate,
	}
	for i := range attempts {
		if attempts[i].IsWin() {
			out.Won = true
			out.GuessesUsed = attempts[i].GuessNumber
			return out, true
		}
	}
	if len(attempts) >= MaxGuesses {
		out.GuessesUsed = MaxGuesses
		return out, true
	}
	return GameOutcome{}, false
}

// DistributionKeys are the guess_distribution buckets: wins keyed by
// guess count, losses keyed "X".
var DistributionKeys = []string{"1", "2", "3", "4", "5", "6", "X"}

// StatsSummary is a user's aggregate view over all completed games.
type StatsSummary struct {
	GamesPlayed       int
	Wins              int
	WinPct            float64
	AvgGuesses        float64
	CurrentStreak     int
	MaxStreak         int
	GuessDistribution map[string]int
	RecentOutcomes    []GameOutcome
}

// LeaderboardEntry is one row of the cross-user leaderboard.
type LeaderboardEntry struct {
	Username   string
	Games      int
	Wins       int
	AvgGuesses float64
}
