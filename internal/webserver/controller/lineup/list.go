package lineup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// List shows the lineups of the host, along with a form to create a new one
func (l *Controller) List(c *fiber.Ctx) error {
	lineups, err := l.repository.ListByHost(session(c).HostID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("lineup/index", fiber.Map{
		"Title":   "Dashboard",
		"Lineups": lineups,
		"Lineup":  model.EventLineup{IsActive: true},
		"Errors":  map[string]string{},
	}, "layout")
}
