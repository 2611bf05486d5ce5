package handlers

import (
	"fmt"
	"strings"

	"wordletracker/internal/models"
	"wordletracker/internal/service"
)

// JSON shapes returned by the API. Models stay transport-agnostic;
// everything the client sees is defined here.

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type AttemptView struct {
	GuessNumber int      `json:"guess_number"`
	Guess       string   `json:"guess"`
	Pattern     []string `json:"pattern"`
	Emoji       string   `json:"emoji"`
}

type SubmitGuessResponse struct {
	Attempt  AttemptView `json:"attempt"`
	Win      bool        `json:"win"`
	GameOver bool        `json:"game_over"`
	Status   string      `json:"status"`
}

type GameStateResponse struct {
	Date     string        `json:"date"`
	Status   string        `json:"status"`
	Attempts []AttemptView `json:"attempts"`
	Share    string        `json:"share,omitempty"`
}

type OutcomeView struct {
	Date        string `json:"date"`
	Won         bool   `json:"won"`
	GuessesUsed int    `json:"guesses_used"`
}

type StatsResponse struct {
	GamesPlayed       int            `json:"games_played"`
	Wins              int            `json:"wins"`
	WinPct            float64        `json:"win_pct"`
	AvgGuesses        float64        `json:"avg_guesses"`
	CurrentStreak     int            `json:"current_streak"`
	MaxStreak         int            `json:"max_streak"`
	GuessDistribution map[string]int `json:"guess_distribution"`
	RecentOutcomes    []OutcomeView  `json:"recent_outcomes"`
}

type LeaderboardEntryView struct {
	Username   string  `json:"username"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	AvgGuesses float64 `json:"avg_guesses"`
}

func newAttemptView(attempt models.GuessAttempt) AttemptView {
	pattern := make([]string, len(attempt.Pattern))
	for i, v := range attempt.Pattern {
		pattern[i] = string(v)
	}
	return AttemptView{
		GuessNumber: attempt.GuessNumber,
		Guess:       attempt.Word,
		Pattern:     pattern,
		Emoji:       attempt.Pattern.Emoji(),
	}
}

func newSubmitGuessResponse(res *service.SubmitResult, status models.GameStatus) SubmitGuessResponse {
	return SubmitGuessResponse{
		Attempt:  newAttemptView(res.Attempt),
		Win:      res.Win,
		GameOver: res.GameOver,
		Status:   string(status),
	}
}

func newGameStateResponse(date models.Date, attempts []models.GuessAttempt) GameStateResponse {
	views := make([]AttemptView, len(attempts))
	for i, a := range attempts {
		views[i] = newAttemptView(a)
	}
	status := models.StatusOf(attempts)

	resp := GameStateResponse{
		Date:     date.String(),
		Status:   string(status),
		Attempts: views,
	}
	if status.IsTerminal() {
		resp.Share = shareText(date, attempts, status)
	}
	return resp
}

// shareText renders the spoiler-free emoji grid for a finished game.
func shareText(date models.Date, attempts []models.GuessAttempt, status models.GameStatus) string {
	score := "X"
	if status == models.GameWon {
		score = fmt.Sprintf("%d", len(attempts))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wordle %s %s/%d\n", date.String(), score, models.MaxGuesses)
	for _, a := range attempts {
		b.WriteString("\n")
		b.WriteString(a.Pattern.Emoji())
	}
	return b.String()
}

func newStatsResponse(summary *models.StatsSummary) StatsResponse {
	outcomes := make([]OutcomeView, len(summary.RecentOutcomes))
	for i, o := range summary.RecentOutcomes {
		outcomes[i] = OutcomeView{
			Date:        o.GameDate.String(),
			Won:         o.Won,
			GuessesUsed: o.GuessesUsed,
		}
	}
	return StatsResponse{
		GamesPlayed:       summary.GamesPlayed,
		Wins:              summary.Wins,
		WinPct:            summary.WinPct,
		AvgGuesses:        summary.AvgGuesses,
		CurrentStreak:     summary.CurrentStreak,
		MaxStreak:         summary.MaxStreak,
		GuessDistribution: summary.GuessDistribution,
		RecentOutcomes:    outcomes,
	}
}

func newLeaderboardView(entries []models.LeaderboardEntry) []LeaderboardEntryView {
	views := make([]LeaderboardEntryView, len(entries))
	for i, e := range entries {
		views[i] = LeaderboardEntryView{
			Username:   e.Username,
			Games:      e.Games,
			Wins:       e.Wins,
			AvgGuesses: e.AvgGuesses,
		}
	}
	return views
}
