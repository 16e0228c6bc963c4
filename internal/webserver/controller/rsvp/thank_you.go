package rsvp

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
)

func (r *Controller) ThankYou(c *fiber.Ctx) error {
	lineup, err := r.activeLineup(c)
	if err != nil {
		return err
	}

	message := rsvp.MessageEmailDelayed
	if c.Query("emailSent") == "true" {
		message = rsvp.MessageEmailSent
	}

	return c.Render("rsvp/thank-you", fiber.Map{
		"Title":     lineup.Title,
		"Lineup":    lineup,
		"Name":      c.Query("name"),
		"Email":     c.Query("email"),
		"Attending": c.Query("attending") == "true",
		"Message":   message,
	}, "layout")
}
