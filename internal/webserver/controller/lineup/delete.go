package lineup

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Delete removes a lineup along with its events, guests and everything related to them
func (l *Controller) Delete(c *fiber.Ctx) error {
	err := l.repository.Delete(session(c).HostID, c.Params("lineupId"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/dashboard")
}
