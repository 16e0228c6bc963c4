package guest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// Update saves the guest's details and brings their invitations in line with the form
func (g *Controller) Update(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	guest, err := g.find(lineup.ID, c.Params("guestId"))
	if err != nil {
		return err
	}

	fromForm(c, guest)
	targets, errs := targetsFromForm(c, lineup.Events)
	for field, msg := range guest.Validate() {
		errs[field] = msg
	}

	if len(errs) > 0 {
		return render(c, fiber.StatusBadRequest, lineup, guest, limitsFromTargets(targets), errs)
	}

	if err := g.repository.Update(guest); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return fiber.ErrInternalServerError
		}
		errs["fullname"] = "Guest with this name already exists"
		return render(c, fiber.StatusConflict, lineup, guest, limitsFromTargets(targets), errs)
	}

	if _, err := g.invitations.Sync(guest.ID, targets); err != nil {
		if errors.Is(err, model.ErrConflict) {
			errs["invitations"] = "Invitations were changed by someone else, please try again"
			return render(c, fiber.StatusConflict, lineup, guest, limitsFromTargets(targets), errs)
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s/guests", lineup.ID))
}
