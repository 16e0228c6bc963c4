package guest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (g *Controller) New(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, lineup, &model.Guest{}, map[string]int{}, map[string]string{})
}
