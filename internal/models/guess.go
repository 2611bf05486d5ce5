package models

import (
	"fmt"
	"strings"
	"time"
)

// WordLength is the fixed length of every puzzle solution and guess.
const WordLength = 5

// MaxGuesses is the number of attempts allowed per game day.
const MaxGuesses = 6

// Verdict classifies a single letter of a guess against the solution.
type Verdict string

const (
	// VerdictCorrect means right letter in the right position.
	VerdictCorrect Verdict = "correct"
	// VerdictPresent means the letter occurs elsewhere in the solution
	// (after exact matches and earlier present matches are accounted for).
	VerdictPresent Verdict = "present"
	// VerdictAbsent means no unmatched occurrence of the letter remains.
	VerdictAbsent Verdict = "absent"
)

// Pattern is the ordered per-letter verdict sequence for one guess.
type Pattern []Verdict

// IsWin reports whether every position is correct.
func (p Pattern) IsWin() bool {
	if len(p) != WordLength {
		return false
	}
	for _, v := range p {
		if v != VerdictCorrect {
			return false
		}
	}
	return true
}

// Emoji renders the pattern as a share-style emoji row.
func (p Pattern) Emoji() string {
	var b strings.Builder
	for _, v := range p {
		switch v {
		case VerdictCorrect:
			b.WriteString("🟩")
		case VerdictPresent:
			b.WriteString("🟨")
		default:
			b.WriteString("⬛")
		}
	}
	return b.String()
}

// Encode packs the pattern into a 5-char code string (C/P/A) for storage.
func (p Pattern) Encode() string {
	var b strings.Builder
	for _, v := range p {
		switch v {
		case VerdictCorrect:
			b.WriteByte('C')
		case VerdictPresent:
			b.WriteByte('P')
		default:
			b.WriteByte('A')
		}
	}
	return b.String()
}

// DecodePattern unpacks a stored pattern code produced by Encode.
func DecodePattern(code string) (Pattern, error) {
	if len(code) != WordLength {
		return nil, fmt.Errorf("invalid pattern code %q: want %d chars", code, WordLength)
	}
	p := make(Pattern, WordLength)
	for i := 0; i < WordLength; i++ {
		switch code[i] {
		case 'C':
			p[i] = VerdictCorrect
		case 'P':
			p[i] = VerdictPresent
		case 'A':
			p[i] = VerdictAbsent
		default:
			return nil, fmt.Errorf("invalid pattern code %q: bad char %q", code, code[i])
		}
	}
	return p, nil
}

// GuessAttempt is one scored guess submission. Attempts are append-only:
// once written they are never updated or deleted.
type GuessAttempt struct {
	ID          int64
	UserID      string
	GameDate    Date
	GuessNumber int
	Word        string
	Pattern     Pattern
	CreatedAt   time.Time
}

// IsWin reports whether this attempt solved the puzzle.
func (a *GuessAttempt) IsWin() bool {
	return a.Pattern.IsWin()
}

// GameStatus is the per-(user, date) game state.
type GameStatus string

const (
	GameNotStarted GameStatus = "not_started"
	GameInProgress GameStatus = "in_progress"
	GameWon        GameStatus = "won"
	GameLost       GameStatus = "lost"
)

// StatusOf derives the game state from the ordered attempt log.
func StatusOf(attempts []GuessAttempt) GameStatus {
	if len(attempts) == 0 {
		return GameNotStarted
	}
	for i := range attempts {
		if attempts[i].IsWin() {
			return GameWon
		}
	}
	if len(attempts) >= MaxGuesses {
		return GameLost
	}
	return GameInProgress
}

// IsTerminal reports whether no further guesses are accepted.
func (s GameStatus) IsTerminal() bool {
	return s == GameWon || s == GameLost
}
