package event

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Update saves the event form. Slug and sorting time are derived again from the submitted name, date and time.
func (e *Controller) Update(c *fiber.Ctx) error {
	lineup, err := e.ownedLineup(c)
	if err != nil {
		return err
	}

	event, err := e.find(lineup.ID, c.Params("eventId"))
	if err != nil {
		return err
	}

	fromForm(c, event)

	if errs := event.Validate(); len(errs) > 0 {
		return render(c, fiber.StatusBadRequest, lineup, event, errs)
	}

	if err := e.repository.Update(event); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s", lineup.ID))
}
