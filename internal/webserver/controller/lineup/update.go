package lineup

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (l *Controller) Update(c *fiber.Ctx) error {
	lineup, err := l.repository.FindOwned(session(c).HostID, c.Params("lineupId"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	fromForm(c, lineup)

	errs := lineup.Validate()
	if len(errs) == 0 {
		err := l.repository.Update(lineup)
		switch {
		case errors.Is(err, model.ErrConflict):
			errs["title"] = "A lineup with this title already exists"
		case err != nil:
			return fiber.ErrInternalServerError
		default:
			return c.Redirect(fmt.Sprintf("/dashboard/%s?saved=true", lineup.ID))
		}
	}

	return c.Status(fiber.StatusBadRequest).Render("lineup/edit", fiber.Map{
		"Title":  lineup.Title,
		"Lineup": lineup,
		"Errors": errs,
	}, "layout")
}
