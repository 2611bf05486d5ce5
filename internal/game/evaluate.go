// Package game contains the pure guess-scoring logic. It has no state
// and performs no I/O; everything else in the server builds on it.
package game

import (
	"errors"
	"strings"

	"wordletracker/internal/models"
)

// ErrInvalidWord is returned when a guess or solution is not exactly
// five alphabetic characters.
var ErrInvalidWord = errors.New("word must be exactly 5 letters a-z")

// ValidWord reports whether w is exactly five ASCII letters.
func ValidWord(w string) bool {
	if len(w) != models.WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Evaluate scores guess against solution and returns the ordered
// per-letter verdicts. Comparison is case-insensitive.
//
// Scoring is two passes. The first pass marks exact-position matches and
// consumes those letters from the solution, so an exact match is never
// downgraded by an earlier out-of-position occurrence. The second pass
// marks remaining letters present only while unconsumed occurrences are
// left in the solution, so a guess with more copies of a letter than the
// solution never over-counts (solution ALLOW, guess LLAMA: the second L
// is an exact match, the first is present, and both As cannot be).
func Evaluate(guess, solution string) (models.Pattern, error) {
	if !ValidWord(guess) || !ValidWord(solution) {
		return nil, ErrInvalidWord
	}

	guess = strings.ToLower(guess)
	solution = strings.ToLower(solution)

	pattern := make(models.Pattern, models.WordLength)
	var remaining [26]int

	for i := 0; i < models.WordLength; i++ {
		if guess[i] == solution[i] {
			pattern[i] = models.VerdictCorrect
		} else {
			remaining[solution[i]-'a']++
		}
	}

	for i := 0; i < models.WordLength; i++ {
		if pattern[i] == models.VerdictCorrect {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			pattern[i] = models.VerdictPresent
			remaining[c]--
		} else {
			pattern[i] = models.VerdictAbsent
		}
	}

	return pattern, nil
}
