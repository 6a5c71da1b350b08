package service

import "time"

// dayLayout is the wire format for whole-day dates.
const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD date in UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// FormatDay renders a date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// StartOfDay truncates a timestamp to midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of a day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Covers reports whether the inclusive whole-day interval [start, end]
// contains the given day.
func Covers(start, end, day time.Time) bool {
	d := StartOfDay(day)
	return !d.Before(StartOfDay(start)) && !d.After(EndOfDay(end))
}

// Overlaps reports whether the inclusive interval [start, end] intersects
// the query window [qStart, qEnd].
func Overlaps(start, end, qStart, qEnd time.Time) bool {
	return !start.After(EndOfDay(qEnd)) && !end.Before(StartOfDay(qStart))
}
