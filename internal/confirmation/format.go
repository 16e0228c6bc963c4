package confirmation

import (
	"fmt"
	"time"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Ordinal returns day followed by its English ordinal suffix, as in 1st, 2nd, 11th or 23rd
func Ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// FormatDate writes date as "15th December, 2025". Dates are stored as UTC midnights.
func FormatDate(date time.Time) string {
	date = date.UTC()
	return fmt.Sprintf("%s %s, %d", Ordinal(date.Day()), date.Month(), date.Year())
}

// FormatTime writes a wall clock time in 12 hours notation, e. g. "4:00 PM".
// Values that cannot be parsed are returned untouched.
func FormatTime(clock string) string {
	hour, minute, err := model.ParseClock(clock)
	if err != nil {
		return clock
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
