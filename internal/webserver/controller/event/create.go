package event

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (e *Controller) Create(c *fiber.Ctx) error {
	lineup, err := e.ownedLineup(c)
	if err != nil {
		return err
	}

	event := model.Event{LineupID: lineup.ID}
	fromForm(c, &event)

	if errs := event.Validate(); len(errs) > 0 {
		return render(c, fiber.StatusBadRequest, lineup, &event, errs)
	}

	if err := e.repository.Create(&event); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s", lineup.ID))
}
