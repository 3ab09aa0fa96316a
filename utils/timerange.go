package utils

import "time"

// PreviousMonthRange returns the closed interval covering the calendar month
// before the one containing now, in UTC. For a January reference date the
// interval is December of the prior year.
func PreviousMonthRange(now time.Time) (start, end time.Time) {
	now = now.UTC()
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = firstOfThisMonth.Add(-time.Second)
	start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// TrailingDaysStart returns midnight UTC of the first calendar date in a
// trailing window of days ending on now's date. days must be >= 1; a 7-day
// window starting from now covers now-6d .. now inclusive.
func TrailingDaysStart(now time.Time, days int) time.Time {
	now = now.UTC()
	first := now.AddDate(0, 0, -(days - 1))
	return time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
}
