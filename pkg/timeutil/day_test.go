package timeutil

import (
	"testing"
	"time"
)

func TestDayUsesLocalCalendar(t *testing.T) {
	// 2024-03-02 00:30 local, whatever the zone: the day must come from the
	// local clock reading, not a UTC conversion.
	local := time.Date(2024, time.March, 2, 0, 30, 0, 0, time.Local)
	if got := Day(local); got != "2024-03-02" {
		t.Fatalf("expected 2024-03-02, got %s", got)
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-day", "2024-13-01", "2024-3-1", "03/01/2024"} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
		if IsDay(bad) {
			t.Fatalf("IsDay(%q) = true", bad)
		}
	}
	if !IsDay("2024-02-29") {
		t.Fatalf("2024 is a leap year")
	}
}

func TestAfter(t *testing.T) {
	if !After("2024-03-02", "2024-03-01") {
		t.Fatalf("expected 2024-03-02 after 2024-03-01")
	}
	if After("2024-03-01", "2024-03-01") {
		t.Fatalf("a day is not after itself")
	}
	if After("2024-03-01", "2024-03-02") {
		t.Fatalf("expected 2024-03-01 not after 2024-03-02")
	}
}
