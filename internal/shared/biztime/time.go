// Package biztime centralizes time handling conventions.
// All storage and transport use UTC; persisted dates are ISO-8601 strings.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatStored formats a time for column storage using RFC 3339.
func FormatStored(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseStored parses an ISO-8601 timestamp read from storage.
// It accepts RFC 3339 with or without fractional seconds.
func ParseStored(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid stored timestamp %q", s)
}

// ParseDate parses a plain date (YYYY-MM-DD) as UTC midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}
