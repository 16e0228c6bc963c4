package guest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (g *Controller) Edit(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	guest, err := g.find(lineup.ID, c.Params("guestId"))
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, lineup, guest, invitedLimits(guest), map[string]string{})
}

func (g *Controller) find(lineupID, id string) (*model.Guest, error) {
	guest, err := g.repository.FindInLineup(lineupID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return guest, nil
}
