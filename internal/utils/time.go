package utils

import (
	"fmt"
	"time"

	"hall-booker/internal/models"
)

// DateTimeLayout is the only timestamp format accepted on the command line
// and written to event files (yyyy-MM-dd HH:mm:ss).
const DateTimeLayout = "2006-01-02 15:04:05"

// ParseDateTime joins a date token and a time token and parses them in UTC.
func ParseDateTime(date, clock string) (time.Time, error) {
	return ParseTimestamp(date + " " + clock)
}

// ParseTimestamp parses a full "yyyy-MM-dd HH:mm:ss" value.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil || t.Format(DateTimeLayout) != value {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDate, value)
	}
	return t, nil
}

// FormatTimestamp renders t in DateTimeLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(DateTimeLayout)
}
