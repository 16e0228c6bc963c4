package lineup

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (l *Controller) Create(c *fiber.Ctx) error {
	lineup := model.EventLineup{HostID: session(c).HostID}
	fromForm(c, &lineup)

	errs := lineup.Validate()
	if len(errs) == 0 {
		err := l.repository.Create(&lineup)
		switch {
		case errors.Is(err, model.ErrConflict):
			errs["title"] = "A lineup with this title already exists"
		case err != nil:
			return fiber.ErrInternalServerError
		default:
			return c.Redirect(fmt.Sprintf("/dashboard/%s", lineup.ID))
		}
	}

	lineups, err := l.repository.ListByHost(session(c).HostID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusBadRequest).Render("lineup/index", fiber.Map{
		"Title":   "Dashboard",
		"Lineups": lineups,
		"Lineup":  lineup,
		"Errors":  errs,
	}, "layout")
}
