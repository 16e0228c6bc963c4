package rsvp

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Lookup looks for the guest by name. If found, the form to answer for each of the
// events they are invited to is shown, otherwise similar names are suggested.
func (r *Controller) Lookup(c *fiber.Ctx) error {
	lineup, err := r.activeLineup(c)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.FormValue("full-name"))
	email := strings.TrimSpace(c.FormValue("email"))
	vars := fiber.Map{
		"Title":  lineup.Title,
		"Lineup": lineup,
		"Name":   name,
		"Email":  email,
	}

	errs := map[string]string{}
	if name == "" {
		errs["fullname"] = "Please enter your full name"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Please enter a valid email address"
	}
	if len(errs) > 0 {
		vars["Errors"] = errs
		return c.Status(fiber.StatusBadRequest).Render("rsvp/lookup", vars, "layout")
	}

	match, err := r.guests.Match(lineup.ID, name)
	if err != nil {
		vars["Error"] = "Something went wrong, please try again."
		return c.Status(fiber.StatusInternalServerError).Render("rsvp/lookup", vars, "layout")
	}

	if !match.Matched {
		vars["Suggestions"] = match.Suggestions
		vars["NotFound"] = true
		return c.Render("rsvp/lookup", vars, "layout")
	}

	return renderForm(c, fiber.StatusOK, lineup, match.Guest, email, openEvents(lineup, match.Events), nil, nil)
}

func renderForm(c *fiber.Ctx, status int, lineup *model.EventLineup, guest *model.Guest, email string, events []model.EventSummary, answers map[string]rsvp.Answer, errs map[string]string) error {
	if answers == nil {
		answers = map[string]rsvp.Answer{}
	}
	if errs == nil {
		errs = map[string]string{}
	}
	return c.Status(status).Render("rsvp/form", fiber.Map{
		"Title":   lineup.Title,
		"Lineup":  lineup,
		"Guest":   guest,
		"Email":   email,
		"Events":  events,
		"Answers": answers,
		"Errors":  errs,
	}, "layout")
}
