package utils

import (
	"testing"
	"time"
)

func TestPreviousMonthRangeMidYear(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	start, end := PreviousMonthRange(now)

	wantStart := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestPreviousMonthRangeYearRollover(t *testing.T) {
	now := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	start, end := PreviousMonthRange(now)

	if start.Year() != 2024 || start.Month() != time.December {
		t.Errorf("start = %v, want December 2024", start)
	}
	if end.Year() != 2024 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("end = %v, want 2024-12-31", end)
	}
}

func TestPreviousMonthRangeLeapFebruary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, end := PreviousMonthRange(now)

	if end.Month() != time.February || end.Day() != 29 {
		t.Errorf("end = %v, want 2024-02-29", end)
	}
}

func TestPreviousMonthRangeStaysInsideOneMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		now := time.Date(2025, month, 20, 12, 0, 0, 0, time.UTC)
		start, end := PreviousMonthRange(now)

		if start.Month() != end.Month() || start.Year() != end.Year() {
			t.Errorf("month %v: window spans months: %v .. %v", month, start, end)
		}
		if !end.After(start) {
			t.Errorf("month %v: end %v not after start %v", month, end, start)
		}
		if !start.Before(now) || !end.Before(now) {
			t.Errorf("month %v: window %v..%v not entirely before now %v", month, start, end, now)
		}
	}
}

func TestTrailingDaysStart(t *testing.T) {
	now := time.Date(2025, time.March, 7, 18, 45, 0, 0, time.UTC)
	start := TrailingDaysStart(now, 7)

	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestTrailingDaysStartCrossesMonth(t *testing.T) {
	now := time.Date(2025, time.March, 2, 1, 0, 0, 0, time.UTC)
	start := TrailingDaysStart(now, 7)

	want := time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}
