package rsvp

import (
	"fmt"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Validate checks answers against the guest's invitations, which must be
// loaded. Not attending answers are normalised to zero attendees. The returned
// map is keyed by event id.
func Validate(guest model.Guest, answers []Answer) ([]Answer, map[string]string) {
	errs := map[string]string{}
	valid := make([]Answer, 0, len(answers))

	for _, answer := range answers {
		limit := guest.InvitedTo(answer.EventID)
		if limit == 0 {
			errs[answer.EventID] = "You are not invited to this event"
			continue
		}
		if !answer.IsAttending {
			answer.AttendeeCount = 0
		} else if !model.ValidAttendeeCount(limit, answer.AttendeeCount) {
			if limit == model.Unlimited {
				errs[answer.EventID] = "At least one attendee is required"
			} else {
				errs[answer.EventID] = fmt.Sprintf("Number of attendees must be between 1 and %d", limit)
			}
			continue
		}
		valid = append(valid, answer)
	}

	return valid, errs
}
