package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// FeedDateLayout is the compact form the scoreboard feed expects (YYYYMMDD).
	FeedDateLayout = "20060102"
)

// ParseDate parses a YYYY-MM-DD or YYYYMMDD date string.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(FeedDateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYYMMDD)", value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatFeedDate formats a time as YYYYMMDD in its current location.
func FormatFeedDate(t time.Time) string {
	return t.Format(FeedDateLayout)
}

// ResolveLocation returns a location for a tz string, or nil if empty or invalid.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
