package rsvp

import (
	"github.com/gofiber/fiber/v2"
)

// Show asks the guest for their name and email, the first step to answer an invitation
func (r *Controller) Show(c *fiber.Ctx) error {
	lineup, err := r.activeLineup(c)
	if err != nil {
		return err
	}

	return c.Render("rsvp/lookup", fiber.Map{
		"Title":  lineup.Title,
		"Lineup": lineup,
	}, "layout")
}
