package guest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (g *Controller) Delete(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	if err := g.repository.Delete(lineup.ID, c.Params("guestId")); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s/guests", lineup.ID))
}
