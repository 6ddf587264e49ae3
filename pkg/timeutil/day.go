// Package timeutil provides canonical local calendar-day helpers.
//
// All grouping and "is today" logic works on local calendar days rendered as
// YYYY-MM-DD strings. Raw timestamps and UTC days are never compared directly;
// doing so shifts notes across midnight in non-UTC zones.
package timeutil

import (
	"fmt"
	"time"
)

// DayLayout is the canonical calendar-day format.
const DayLayout = "2006-01-02"

// Day formats t as the local calendar day it falls on.
func Day(t time.Time) string {
	return t.Local().Format(DayLayout)
}

// Today returns the current local calendar day.
func Today() string {
	return Day(time.Now())
}

// ParseDay validates a canonical day string and returns its midnight in the
// local zone.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid day %q: %w", day, err)
	}
	return t, nil
}

// IsDay reports whether day is a valid canonical day string.
func IsDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// After reports whether day a is strictly later than day b. Canonical day
// strings order lexicographically, so no parsing is needed for valid input.
func After(a, b string) bool {
	return a > b
}
