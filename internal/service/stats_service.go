package service

import (
	"fmt"
	"math"
	"strconv"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
)

// StatsService reconstructs a user's summary statistics from the full
// attempt history. Nothing is cached; the attempt log is the single
// source of truth.
type StatsService struct {
	guesses     repository.GuessStore
	leaderboard repository.LeaderboardStore
}

// NewStatsService creates a new stats service
func NewStatsService(guesses repository.GuessStore, leaderboard repository.LeaderboardStore) *StatsService {
	return &StatsService{
		guesses:     guesses,
		leaderboard: leaderboard,
	}
}

// ComputeStats derives games played, win rate, guess distribution and
// streaks from the user's completed games. In-progress days (fewer than
// six attempts, none winning) are excluded.
func (s *StatsService) ComputeStats(userID string) (*models.StatsSummary, error) {
	return s.computeStatsAt(userID, models.Today())
}

// computeStatsAt is ComputeStats with an explicit "today", so streak
// behavior at the trailing edge is testable.
func (s *StatsService) computeStatsAt(userID string, today models.Date) (*models.StatsSummary, error) {
	attempts, err := s.guesses.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}

	outcomes := completedOutcomes(attempts)

	summary := &models.StatsSummary{
		GamesPlayed:       len(outcomes),
		GuessDistribution: emptyDistribution(),
		RecentOutcomes:    outcomes,
	}

	var winGuessSum int
	for _, o := range outcomes {
		if o.Won {
			summary.Wins++
			winGuessSum += o.GuessesUsed
			summary.GuessDistribution[strconv.Itoa(o.GuessesUsed)]++
		} else {
			summary.GuessDistribution["X"]++
		}
	}

	if summary.GamesPlayed > 0 {
		summary.WinPct = round1(float64(summary.Wins) / float64(summary.GamesPlayed) * 100)
	}
	if summary.Wins > 0 {
		summary.AvgGuesses = round2(float64(winGuessSum) / float64(summary.Wins))
	}

	summary.CurrentStreak, summary.MaxStreak = streaks(outcomes, today)

	return summary, nil
}

// Leaderboard returns the cross-user ranking.
func (s *StatsService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.leaderboard.Leaderboard(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}
	return entries, nil
}

// completedOutcomes partitions attempts by game date and keeps the
// terminal ones, ordered by date ascending. The attempt log is already
// ordered by date then guess number.
func completedOutcomes(attempts []models.GuessAttempt) []models.GameOutcome {
	outcomes := []models.GameOutcome{}

	var day []models.GuessAttempt
	flush := func() {
		if out, complete := models.OutcomeOf(day); complete {
			outcomes = append(outcomes, out)
		}
		day = day[:0]
	}

	for i := range attempts {
		if len(day) > 0 && !day[0].GameDate.Equal(attempts[i].GameDate) {
			flush()
		}
		day = append(day, attempts[i])
	}
	flush()

	return outcomes
}

// streaks scans completed outcomes ordered by date ascending and
// returns the current and maximum win streak.
//
// A streak is a maximal run of consecutive calendar dates that are all
// wins; a loss or a missing date breaks it. The current streak is the
// run ending at the most recent completed date. An unplayed "today"
// does not break the trailing run, but a gap of more than one day
// between the last completed date and today does.
func streaks(outcomes []models.GameOutcome, today models.Date) (current, max int) {
	run := 0
	var prev models.Date

	for _, o := range outcomes {
		switch {
		case !o.Won:
			run = 0
		case run > 0 && models.DaysBetween(prev, o.GameDate) == 1:
			run++
		default:
			run = 1
		}
		if run > max {
			max = run
		}
		prev = o.GameDate
	}

	if run > 0 && models.DaysBetween(prev, today) <= 1 {
		current = run
	}
	return current, max
}

func emptyDistribution() map[string]int {
	dist := make(map[string]int, len(models.DistributionKeys))
	for _, key := range models.DistributionKeys {
		dist[key] = 0
	}
	return dist
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
