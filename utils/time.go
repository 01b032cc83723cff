package utils

import (
	"fmt"
	"time"
)

const (
	dbDateTimeLayout = "2006-01-02 15:04:05"
	dateOnlyLayout   = "2006-01-02"
)

// FormatDateTimeForDB formats t (in UTC) for the VARCHAR timestamp columns.
func FormatDateTimeForDB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dbDateTimeLayout)
}

// ParseDBDate parses timestamps read back from the database as UTC.
func ParseDBDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if ts, err := time.ParseInLocation(dbDateTimeLayout, value, time.UTC); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unsupported db time format: %s", value)
}

// FormatISO8601 renders t as an RFC 3339 string in UTC; zero times render empty.
func FormatISO8601(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
