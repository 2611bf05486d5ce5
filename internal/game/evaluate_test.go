package game

import (
	"testing"

	"wordletracker/internal/models"
)

const (
	c = models.VerdictCorrect
	p = models.VerdictPresent
	a = models.VerdictAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
		want     models.Pattern
	}{
		{
			name:     "exact match",
			guess:    "abcde",
			solution: "abcde",
			want:     models.Pattern{c, c, c, c, c},
		},
		{
			name:     "no match",
			guess:    "fghij",
			solution: "abcde",
			want:     models.Pattern{a, a, a, a, a},
		},
		{
			name:     "duplicate guess letters capped by solution count",
			guess:    "llama",
			solution: "allow",
			want:     models.Pattern{p, c, p, a, a},
		},
		{
			name:     "two of three e's scored",
			guess:    "erase",
			solution: "speed",
			want:     models.Pattern{p, a, a, p, p},
		},
		{
			name:     "exact match preferred over present",
			guess:    "salsa",
			solution: "basal",
			want:     models.Pattern{p, c, p, a, p},
		},
		{
			name:     "exact matches consume before leading duplicate",
			guess:    "sassy",
			solution: "masse",
			want:     models.Pattern{a, c, c, c, a},
		},
		{
			name:     "case insensitive",
			guess:    "AbCdE",
			solution: "aBcDe",
			want:     models.Pattern{c, c, c, c, c},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.guess, tt.solution)
			if err != nil {
				t.Fatalf("Evaluate(%q, %q) error = %v", tt.guess, tt.solution, err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Evaluate(%q, %q)[%d] = %v, want %v", tt.guess, tt.solution, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	first, err := Evaluate("crane", "speed")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Evaluate("crane", "speed")
		if err != nil {
			t.Fatal(err)
		}
		if again.Encode() != first.Encode() {
			t.Fatalf("run %d: got %s, want %s", i, again.Encode(), first.Encode())
		}
	}
}

func TestEvaluateInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
	}{
		{name: "short guess", guess: "abc", solution: "abcde"},
		{name: "long guess", guess: "abcdef", solution: "abcde"},
		{name: "digits in guess", guess: "abc1e", solution: "abcde"},
		{name: "empty guess", guess: "", solution: "abcde"},
		{name: "short solution", guess: "abcde", solution: "abcd"},
		{name: "punctuation", guess: "ab-de", solution: "abcde"},
		{name: "non-ascii letters", guess: "abcdé", solution: "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.guess, tt.solution); err != ErrInvalidWord {
				t.Errorf("Evaluate(%q, %q) error = %v, want ErrInvalidWord", tt.guess, tt.solution, err)
			}
		})
	}
}
