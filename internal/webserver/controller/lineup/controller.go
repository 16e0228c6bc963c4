package lineup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type lineupRepository interface {
	Create(lineup *model.EventLineup) error
	Update(lineup *model.EventLineup) error
	ListByHost(hostID string) ([]model.EventLineup, error)
	FindOwned(hostID, id string) (*model.EventLineup, error)
	Delete(hostID, id string) error
}

type Controller struct {
	repository lineupRepository
}

func NewController(repository lineupRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}

func session(c *fiber.Ctx) model.Session {
	session, _ := c.Locals("Session").(model.Session)
	return session
}

func fromForm(c *fiber.Ctx, lineup *model.EventLineup) {
	lineup.Title = c.FormValue("title")
	lineup.EventCategory = c.FormValue("event-category")
	lineup.OrganizerName = c.FormValue("organizer-name")
	lineup.OrganizerEmail = c.FormValue("organizer-email")
	lineup.GroomName = c.FormValue("groom-name")
	lineup.BrideName = c.FormValue("bride-name")
	lineup.Description = c.FormValue("description")
	lineup.IsActive = c.FormValue("is-active") == "on"
	lineup.Normalize()
}
