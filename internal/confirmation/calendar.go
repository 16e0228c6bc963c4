package confirmation

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

const (
	eventDuration   = 3 * time.Hour
	reminderTrigger = "-PT24H"
	localTimeFormat = "20060102T150405"
)

// Calendar builds a single iCalendar document holding one VEVENT per event.
// Start times are the events' wall clock times in their own timezone. If any
// event has a malformed date or time no calendar is produced at all.
func Calendar(events []EventDetails, organizerName, organizerEmail, domain string, now time.Time) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Lineup//RSVP//EN")

	for i, e := range events {
		start, err := model.StartsAt(e.Date, e.Time)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		end := start.Add(eventDuration)

		event := cal.AddEvent(fmt.Sprintf("event-%s-%d-%d@%s", e.ID, now.UnixMilli(), i, domain))
		event.SetDtStampTime(now)
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(localTimeFormat), tzid(e.Timezone))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(localTimeFormat), tzid(e.Timezone))
		event.SetSummary(e.Name)
		event.SetDescription(description(e))
		event.SetLocation(fmt.Sprintf("%s, %s", e.Venue, e.Address))
		if e.AddressURL != "" {
			event.SetURL(e.AddressURL)
		}
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetOrganizer("mailto:"+organizerEmail, ics.WithCN(organizerName))

		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(reminderTrigger)
		alarm.SetProperty(ics.ComponentPropertyDescription, fmt.Sprintf("Reminder: %s tomorrow", e.Name))
	}

	return []byte(cal.Serialize()), nil
}

func tzid(timezone string) ics.PropertyParameter {
	return &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{timezone}}
}

func description(e EventDetails) string {
	text := e.Name + "\n\n"
	if e.DressCode != "" {
		text += fmt.Sprintf("Dress Code: %s\n\n", e.DressCode)
	}
	return text + "We look forward to celebrating with you!"
}
