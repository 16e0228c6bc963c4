package guest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Create adds a guest to the lineup and invites them to the events chosen in the form
func (g *Controller) Create(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	guest := model.Guest{LineupID: lineup.ID}
	fromForm(c, &guest)
	targets, errs := targetsFromForm(c, lineup.Events)
	for field, msg := range guest.Validate() {
		errs[field] = msg
	}

	if len(errs) > 0 {
		return render(c, fiber.StatusBadRequest, lineup, &guest, limitsFromTargets(targets), errs)
	}

	if err := g.repository.CreateInvited(&guest, targets); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return fiber.ErrInternalServerError
		}
		errs["fullname"] = "Guest with this name already exists"
		return render(c, fiber.StatusConflict, lineup, &guest, limitsFromTargets(targets), errs)
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s/guests", lineup.ID))
}
