package model

import "time"

const (
	// DateLayout is the only accepted calendar date representation.
	DateLayout = "2006-01-02"
	// ClockLayout is the only accepted time-of-day representation.
	ClockLayout = "15:04"
)

// FormatDate renders t as a DateLayout string in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// SameDate reports whether the ISO date string s names the calendar day of t.
func SameDate(s string, t time.Time) bool {
	return s == FormatDate(t)
}
