package rsvp

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Submit records the guest's answers, which are checked against their invitations first
func (r *Controller) Submit(c *fiber.Ctx) error {
	lineup, err := r.activeLineup(c)
	if err != nil {
		return err
	}

	guest, err := r.guests.FindByID(c.FormValue("guest-id"))
	if err != nil || guest.LineupID != lineup.ID {
		if err == nil || errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	events := invitedEvents(lineup, guest)
	email := strings.TrimSpace(c.FormValue("email"))
	answers := make([]rsvp.Answer, 0, len(events))
	submitted := make(map[string]rsvp.Answer, len(events))
	for _, event := range events {
		choice := c.FormValue("attending-" + event.ID)
		if choice == "" {
			continue
		}
		count, _ := strconv.Atoi(c.FormValue("count-" + event.ID))
		answer := rsvp.Answer{EventID: event.ID, IsAttending: choice == "yes", AttendeeCount: count}
		answers = append(answers, answer)
		submitted[event.ID] = answer
	}

	valid, errs := rsvp.Validate(*guest, answers)
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Please enter a valid email address"
	}
	if len(answers) == 0 {
		errs["answers"] = "Please let us know whether you will attend"
	}
	if len(errs) > 0 {
		return renderForm(c, fiber.StatusBadRequest, lineup, guest, email, events, submitted, errs)
	}

	result := r.workflow.Submit(c.UserContext(), rsvp.Submission{
		GuestID: guest.ID,
		Email:   email,
		Answers: valid,
	})
	if !result.Success {
		if errors.Is(result.Err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		errs["answers"] = result.Message
		return renderForm(c, fiber.StatusInternalServerError, lineup, guest, email, events, submitted, errs)
	}

	attending := false
	for _, answer := range valid {
		attending = attending || answer.IsAttending
	}

	query := url.Values{}
	query.Set("name", guest.FullName)
	query.Set("email", email)
	query.Set("attending", strconv.FormatBool(attending))
	query.Set("emailSent", strconv.FormatBool(result.EmailSent))
	return c.Redirect(fmt.Sprintf("/events/%s/thank-you?%s", lineup.Slug, query.Encode()))
}

// invitedEvents returns the lineup's open events the guest is invited to, in chronological order
func invitedEvents(lineup *model.EventLineup, guest *model.Guest) []model.EventSummary {
	events := make([]model.EventSummary, 0, len(guest.Invitations))
	for _, event := range lineup.Events {
		if limit := guest.InvitedTo(event.ID); limit != 0 {
			events = append(events, event.Summary(limit))
		}
	}
	return events
}
