package event

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (e *Controller) New(c *fiber.Ctx) error {
	lineup, err := e.ownedLineup(c)
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, lineup, &model.Event{Timezone: e.config.DefaultTimezone, IsActive: true}, map[string]string{})
}
