// Package rsvp records guests' answers to their invitations and sends them a confirmation
package rsvp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

const (
	MessageEmailSent    = "RSVP submitted successfully! Check your email for confirmation."
	MessageEmailDelayed = "RSVP submitted successfully! Email confirmation may be delayed."
	MessageNotFound     = "Guest not found"
	MessageFailed       = "Failed to submit RSVP. Please try again."

	defaultEmailTimeout = 10 * time.Second
)

type guestRepository interface {
	FindByID(id string) (*model.Guest, error)
	UpdateEmail(id, email string) error
}

type responseRepository interface {
	Upsert(response *model.Response) error
}

type eventRepository interface {
	FindByIDs(ids []string) ([]model.Event, error)
}

type emailLogRepository interface {
	Create(entry *model.EmailLog) error
}

type composer interface {
	Compose(input confirmation.Input) (confirmation.Message, error)
}

// Answer is the response of a guest for one event
type Answer struct {
	EventID       string `json:"eventId"`
	IsAttending   bool   `json:"isAttending"`
	AttendeeCount int    `json:"attendeeCount"`
}

type Submission struct {
	GuestID string   `json:"guestId"`
	Email   string   `json:"email"`
	Answers []Answer `json:"responses"`
}

// Result reports the outcome of a submission. Success only depends on the
// answers being stored; EmailSent tells whether the confirmation went out.
type Result struct {
	Success   bool   `json:"success"`
	EmailSent bool   `json:"emailSent"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

type Workflow struct {
	guests       guestRepository
	responses    responseRepository
	events       eventRepository
	emailLogs    emailLogRepository
	composer     composer
	mailer       confirmation.Mailer
	emailTimeout time.Duration
}

func NewWorkflow(guests guestRepository, responses responseRepository, events eventRepository, emailLogs emailLogRepository, composer composer, mailer confirmation.Mailer, emailTimeout time.Duration) *Workflow {
	if emailTimeout <= 0 {
		emailTimeout = defaultEmailTimeout
	}
	return &Workflow{
		guests:       guests,
		responses:    responses,
		events:       events,
		emailLogs:    emailLogs,
		composer:     composer,
		mailer:       mailer,
		emailTimeout: emailTimeout,
	}
}

// Submit stores the answers of a guest and, if they are attending any event,
// emails them a confirmation. Email problems never make a submission fail.
func (w *Workflow) Submit(ctx context.Context, submission Submission) Result {
	guest, err := w.guests.FindByID(submission.GuestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return Result{Message: MessageNotFound, Err: model.ErrNotFound}
		}
		log.Printf("error looking up guest %s: %s\n", submission.GuestID, err)
		return Result{Message: MessageFailed, Err: err}
	}

	if err := w.guests.UpdateEmail(guest.ID, submission.Email); err != nil {
		return Result{Message: MessageFailed, Err: err}
	}

	var failed []error
	for _, answer := range submission.Answers {
		response := model.Response{
			GuestID:       guest.ID,
			EventID:       answer.EventID,
			IsAttending:   answer.IsAttending,
			AttendeeCount: answer.AttendeeCount,
		}
		if err := w.responses.Upsert(&response); err != nil {
			failed = append(failed, fmt.Errorf("event %s: %w", answer.EventID, err))
		}
	}
	if len(failed) > 0 {
		return Result{Message: MessageFailed, Err: errors.Join(failed...)}
	}

	result := Result{Success: true, Message: MessageEmailDelayed}
	if w.confirm(ctx, guest, submission) {
		result.EmailSent = true
		result.Message = MessageEmailSent
	}
	return result
}

// confirm emails the guest the details of the events they attend, returning
// whether it was sent. Every attempt is logged.
func (w *Workflow) confirm(ctx context.Context, guest *model.Guest, submission Submission) bool {
	counts := make(map[string]int)
	ids := make([]string, 0, len(submission.Answers))
	for _, answer := range submission.Answers {
		if !answer.IsAttending {
			continue
		}
		if _, ok := counts[answer.EventID]; !ok {
			ids = append(ids, answer.EventID)
		}
		counts[answer.EventID] = answer.AttendeeCount
	}
	if len(ids) == 0 {
		return false
	}

	messageID, err := w.send(ctx, guest, submission.Email, ids, counts)

	entry := model.EmailLog{
		GuestID:   guest.ID,
		EmailType: model.EmailTypeConfirmation,
		Status:    model.EmailStatusSent,
		ResendID:  messageID,
	}
	if err != nil {
		log.Printf("error sending confirmation to %s: %s\n", submission.Email, err)
		entry.Status = model.EmailStatusFailed
		entry.Error = err.Error()
	}
	if logErr := w.emailLogs.Create(&entry); logErr != nil {
		log.Printf("error logging confirmation email for guest %s: %s\n", guest.ID, logErr)
	}

	return err == nil
}

func (w *Workflow) send(ctx context.Context, guest *model.Guest, email string, ids []string, counts map[string]int) (string, error) {
	events, err := w.events.FindByIDs(ids)
	if err != nil {
		return "", err
	}

	details := make([]confirmation.EventDetails, 0, len(events))
	for _, event := range events {
		count := counts[event.ID]
		if count < 1 {
			count = 1
		}
		details = append(details, confirmation.EventDetails{
			ID:            event.ID,
			Name:          event.Name,
			Date:          event.Date,
			Time:          event.Time,
			Timezone:      event.Timezone,
			Venue:         event.Venue,
			Address:       event.Address,
			AddressURL:    event.AddressURL,
			DressCode:     event.DressCode,
			AttendeeCount: count,
		})
	}

	msg, err := w.composer.Compose(confirmation.Input{
		GuestName:      guest.FullName,
		GuestEmail:     email,
		LineupTitle:    guest.Lineup.Title,
		OrganizerName:  guest.Lineup.OrganizerName,
		OrganizerEmail: guest.Lineup.OrganizerEmail,
		Events:         details,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, w.emailTimeout)
	defer cancel()
	return w.mailer.Send(ctx, msg)
}
