package event

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (e *Controller) Edit(c *fiber.Ctx) error {
	lineup, err := e.ownedLineup(c)
	if err != nil {
		return err
	}

	event, err := e.find(lineup.ID, c.Params("eventId"))
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, lineup, event, map[string]string{})
}

func (e *Controller) find(lineupID, id string) (*model.Event, error) {
	event, err := e.repository.FindInLineup(lineupID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return event, nil
}
