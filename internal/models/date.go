package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical wire and storage format for game dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or zone component.
// Game days, streaks and puzzle assignment all operate on Date, never
// on raw timestamps.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.toTime().Format(DateLayout)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays returns the date n days after d (n may be negative).
// Month and year boundaries are normalized.
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// Next returns the day after d.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysBetween returns the number of calendar days from a to b.
// Positive when b is after a, negative when before.
func DaysBetween(a, b Date) int {
	return int(b.toTime().Sub(a.toTime()) / (24 * time.Hour))
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
