package event

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (e *Controller) Delete(c *fiber.Ctx) error {
	lineup, err := e.ownedLineup(c)
	if err != nil {
		return err
	}

	if err := e.repository.Delete(lineup.ID, c.Params("eventId")); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s", lineup.ID))
}
