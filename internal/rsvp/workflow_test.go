package rsvp_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type guestsFake struct {
	guest        *model.Guest
	updatedEmail string
}

func (g *guestsFake) FindByID(id string) (*model.Guest, error) {
	if g.guest == nil || g.guest.ID != id {
		return nil, model.ErrNotFound
	}
	return g.guest, nil
}

func (g *guestsFake) UpdateEmail(id, email string) error {
	g.updatedEmail = email
	return nil
}

type responsesFake struct {
	failFor string
	stored  map[string]model.Response
}

func (r *responsesFake) Upsert(response *model.Response) error {
	if response.EventID == r.failFor {
		return errors.New("storage failure")
	}
	r.stored[response.EventID] = *response
	return nil
}

type eventsFake struct {
	events []model.Event
}

func (e *eventsFake) FindByIDs(ids []string) ([]model.Event, error) {
	var found []model.Event
	for _, event := range e.events {
		for _, id := range ids {
			if event.ID == id {
				found = append(found, event)
			}
		}
	}
	return found, nil
}

type emailLogsFake struct {
	entries []model.EmailLog
}

func (e *emailLogsFake) Create(entry *model.EmailLog) error {
	e.entries = append(e.entries, *entry)
	return nil
}

type mailerFake struct {
	err  error
	sent []confirmation.Message
}

func (m *mailerFake) Send(ctx context.Context, msg confirmation.Message) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("send must be bounded by a deadline")
	}
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return "msg-1", nil
}

type fixture struct {
	guests    *guestsFake
	responses *responsesFake
	emailLogs *emailLogsFake
	mailer    *mailerFake
	workflow  *rsvp.Workflow
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	composer, err := confirmation.NewComposer("rsvp@example.com", "example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f := fixture{
		guests: &guestsFake{guest: &model.Guest{
			ID:       "g1",
			FullName: "John Smith",
			Lineup:   model.EventLineup{Title: "Wedding", OrganizerName: "Ana", OrganizerEmail: "ana@example.com"},
		}},
		responses: &responsesFake{stored: map[string]model.Response{}},
		emailLogs: &emailLogsFake{},
		mailer:    &mailerFake{},
	}
	events := &eventsFake{events: []model.Event{
		{ID: "e1", Name: "Sangeet", Date: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC), Time: "18:00", Timezone: "America/Toronto", Venue: "Hall", Address: "1 Main St"},
		{ID: "e2", Name: "Reception", Date: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), Time: "4:00 PM", Timezone: "America/Toronto", Venue: "Hall", Address: "1 Main St"},
	}}
	f.workflow = rsvp.NewWorkflow(f.guests, f.responses, events, f.emailLogs, composer, f.mailer, time.Second)
	return f
}

func TestSubmitUnknownGuest(t *testing.T) {
	f := newFixture(t)

	result := f.workflow.Submit(context.Background(), rsvp.Submission{GuestID: "nobody", Email: "x@example.com"})

	if result.Success {
		t.Error("Expected submission to fail")
	}
	if !errors.Is(result.Err, model.ErrNotFound) {
		t.Errorf("Expected not found error, got %v", result.Err)
	}
	if f.guests.updatedEmail != "" || len(f.emailLogs.entries) != 0 {
		t.Error("No side effects expected for unknown guests")
	}
}

func TestSubmitAttending(t *testing.T) {
	f := newFixture(t)

	result := f.workflow.Submit(context.Background(), rsvp.Submission{
		GuestID: "g1",
		Email:   "john@example.com",
		Answers: []rsvp.Answer{
			{EventID: "e1", IsAttending: false},
			{EventID: "e2", IsAttending: true, AttendeeCount: 2},
		},
	})

	if !result.Success || !result.EmailSent {
		t.Fatalf("Expected success with email sent, got %+v", result)
	}
	if result.Message != rsvp.MessageEmailSent {
		t.Errorf("Wrong message, got %s", result.Message)
	}
	if f.guests.updatedEmail != "john@example.com" {
		t.Errorf("Guest email not updated, got %s", f.guests.updatedEmail)
	}
	if len(f.responses.stored) != 2 {
		t.Errorf("Expected 2 stored responses, got %d", len(f.responses.stored))
	}
	if len(f.mailer.sent) != 1 || f.mailer.sent[0].To != "john@example.com" {
		t.Fatalf("Expected one confirmation to john@example.com, got %v", f.mailer.sent)
	}
	if len(f.emailLogs.entries) != 1 || f.emailLogs.entries[0].Status != model.EmailStatusSent || f.emailLogs.entries[0].ResendID != "msg-1" {
		t.Errorf("Expected a sent email log entry, got %v", f.emailLogs.entries)
	}
}

func TestSubmitEmailFailureKeepsSuccess(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("provider rejected message")

	result := f.workflow.Submit(context.Background(), rsvp.Submission{
		GuestID: "g1",
		Email:   "john@example.com",
		Answers: []rsvp.Answer{{EventID: "e1", IsAttending: true, AttendeeCount: 1}},
	})

	if !result.Success {
		t.Error("Email failures must not make the submission fail")
	}
	if result.EmailSent {
		t.Error("Expected EmailSent to be false")
	}
	if result.Message != rsvp.MessageEmailDelayed {
		t.Errorf("Wrong message, got %s", result.Message)
	}
	if len(f.emailLogs.entries) != 1 || f.emailLogs.entries[0].Status != model.EmailStatusFailed || f.emailLogs.entries[0].Error != "provider rejected message" {
		t.Errorf("Expected a failed email log entry, got %v", f.emailLogs.entries)
	}
}

func TestSubmitNotAttendingSendsNothing(t *testing.T) {
	f := newFixture(t)

	result := f.workflow.Submit(context.Background(), rsvp.Submission{
		GuestID: "g1",
		Email:   "john@example.com",
		Answers: []rsvp.Answer{{EventID: "e1", IsAttending: false}},
	})

	if !result.Success || result.EmailSent {
		t.Errorf("Expected success without email, got %+v", result)
	}
	if len(f.mailer.sent) != 0 || len(f.emailLogs.entries) != 0 {
		t.Error("No email expected when not attending any event")
	}
}

func TestSubmitResendsOnResubmission(t *testing.T) {
	f := newFixture(t)
	submission := rsvp.Submission{
		GuestID: "g1",
		Email:   "john@example.com",
		Answers: []rsvp.Answer{{EventID: "e2", IsAttending: true, AttendeeCount: 1}},
	}

	f.workflow.Submit(context.Background(), submission)
	f.workflow.Submit(context.Background(), submission)

	if len(f.responses.stored) != 1 {
		t.Errorf("Expected a single stored response, got %d", len(f.responses.stored))
	}
	if len(f.mailer.sent) != 2 || len(f.emailLogs.entries) != 2 {
		t.Errorf("Expected two emails and two log entries, got %d and %d", len(f.mailer.sent), len(f.emailLogs.entries))
	}
}

func TestSubmitUpsertFailureAttemptsEveryEvent(t *testing.T) {
	f := newFixture(t)
	f.responses.failFor = "e1"

	result := f.workflow.Submit(context.Background(), rsvp.Submission{
		GuestID: "g1",
		Email:   "john@example.com",
		Answers: []rsvp.Answer{
			{EventID: "e1", IsAttending: true, AttendeeCount: 1},
			{EventID: "e2", IsAttending: true, AttendeeCount: 1},
		},
	})

	if result.Success {
		t.Error("Expected submission to fail")
	}
	if _, ok := f.responses.stored["e2"]; !ok {
		t.Error("Expected the second event to be stored despite the first failing")
	}
	if len(f.mailer.sent) != 0 {
		t.Error("No email expected when responses could not be stored")
	}
}
