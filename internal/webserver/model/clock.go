package model

import (
	"fmt"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM", "15:04:05"}

// ParseClock reads a wall clock time written either in 24 hours ("16:00")
// or 12 hours ("4:00 PM") notation
func ParseClock(value string) (hour, minute int, err error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid time %q", value)
}

// StartsAt combines the calendar day of date with a wall clock time. No
// timezone conversion happens: the result is the naive local time expressed in UTC.
func StartsAt(date time.Time, clock string) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, fmt.Errorf("missing date")
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}
