package engine

import "time"

// Calendar dates are "YYYY-MM-DD" strings throughout the persisted state,
// so lexicographic comparison is date ordering.
const dateLayout = "2006-01-02"

// DateOnly normalizes a timestamp to its calendar date string.
func DateOnly(t time.Time) string {
	return t.Format(dateLayout)
}

// NormalizeDate trims any time-of-day suffix from an ISO date string.
func NormalizeDate(s string) string {
	if len(s) > len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}

// DaysBetween returns to - from in whole calendar days. Unparseable
// arguments count as zero days.
func DaysBetween(from, to string) int {
	a, err := time.Parse(dateLayout, NormalizeDate(from))
	if err != nil {
		return 0
	}
	b, err := time.Parse(dateLayout, NormalizeDate(to))
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// PrevDate returns the calendar date n days before date.
func PrevDate(date string, n int) string {
	t, err := time.Parse(dateLayout, NormalizeDate(date))
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -n).Format(dateLayout)
}
