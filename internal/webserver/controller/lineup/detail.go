package lineup

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Detail shows the lineup's settings and its events
func (l *Controller) Detail(c *fiber.Ctx) error {
	lineup, err := l.repository.FindOwned(session(c).HostID, c.Params("lineupId"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Render("lineup/edit", fiber.Map{
		"Title":   lineup.Title,
		"Lineup":  lineup,
		"Errors":  map[string]string{},
		"Message": flash(c),
	}, "layout")
}

func flash(c *fiber.Ctx) string {
	if c.Query("saved") == "true" {
		return "Changes saved."
	}
	return ""
}
