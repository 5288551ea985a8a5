package timeutil

import "time"

// Layouts used across the API and the CLI.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime formats t as "YYYY-MM-DD HH:MM" in t's location.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Tomorrow returns the date after clock's current day, as YYYY-MM-DD.
func Tomorrow(clock Clock) string {
	return FormatDate(StartOfDay(clock.Now()).AddDate(0, 0, 1))
}
