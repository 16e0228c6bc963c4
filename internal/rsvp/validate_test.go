package rsvp_test

import (
	"testing"

	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func TestValidate(t *testing.T) {
	guest := model.Guest{
		Invitations: []model.Invitation{
			{EventID: "capped", IsInvited: true, AttendeeLimit: 2},
			{EventID: "open", IsInvited: true, AttendeeLimit: model.Unlimited},
		},
	}

	var cases = []struct {
		name      string
		answer    rsvp.Answer
		wantError bool
	}{
		{"Attending within limit", rsvp.Answer{EventID: "capped", IsAttending: true, AttendeeCount: 2}, false},
		{"Attending over limit", rsvp.Answer{EventID: "capped", IsAttending: true, AttendeeCount: 3}, true},
		{"Attending with no one", rsvp.Answer{EventID: "capped", IsAttending: true, AttendeeCount: 0}, true},
		{"Attending unlimited event", rsvp.Answer{EventID: "open", IsAttending: true, AttendeeCount: 40}, false},
		{"Not attending", rsvp.Answer{EventID: "capped", IsAttending: false, AttendeeCount: 5}, false},
		{"Event not invited to", rsvp.Answer{EventID: "other", IsAttending: true, AttendeeCount: 1}, true},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			valid, errs := rsvp.Validate(guest, []rsvp.Answer{tcase.answer})
			if tcase.wantError && len(errs) == 0 {
				t.Error("Expected a validation error")
			}
			if !tcase.wantError {
				if len(errs) != 0 {
					t.Errorf("Unexpected validation errors: %v", errs)
				}
				if len(valid) != 1 {
					t.Fatalf("Expected answer to be kept")
				}
				if !valid[0].IsAttending && valid[0].AttendeeCount != 0 {
					t.Error("Not attending answers must have no attendees")
				}
			}
		})
	}
}
