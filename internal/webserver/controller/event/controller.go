package event

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type eventRepository interface {
	Create(event *model.Event) error
	Update(event *model.Event) error
	FindInLineup(lineupID, id string) (*model.Event, error)
	Delete(lineupID, id string) error
}

type lineupRepository interface {
	FindOwned(hostID, id string) (*model.EventLineup, error)
}

type Controller struct {
	repository eventRepository
	lineups    lineupRepository
	config     Config
}

type Config struct {
	DefaultTimezone string
}

func NewController(repository eventRepository, lineups lineupRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		lineups:    lineups,
		config:     cfg,
	}
}

// ownedLineup returns the lineup in the route, provided the logged in host owns it
func (e *Controller) ownedLineup(c *fiber.Ctx) (*model.EventLineup, error) {
	session, _ := c.Locals("Session").(model.Session)
	lineup, err := e.lineups.FindOwned(session.HostID, c.Params("lineupId"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return lineup, nil
}

func fromForm(c *fiber.Ctx, event *model.Event) {
	event.Name = c.FormValue("name")
	event.Description = c.FormValue("description")
	event.Date, _ = time.Parse(model.DateLayout, c.FormValue("date"))
	event.Time = c.FormValue("time")
	event.Timezone = c.FormValue("timezone")
	event.Venue = c.FormValue("venue")
	event.Address = c.FormValue("address")
	event.AddressURL = c.FormValue("address-url")
	event.DressCode = c.FormValue("dress-code")
	event.IsActive = c.FormValue("is-active") == "on"
	event.Normalize()
}

func render(c *fiber.Ctx, status int, lineup *model.EventLineup, event *model.Event, errs map[string]string) error {
	title := "Add event"
	if event.ID != "" {
		title = event.Name
	}
	return c.Status(status).Render("event/edit", fiber.Map{
		"Title":  title,
		"Lineup": lineup,
		"Event":  event,
		"Errors": errs,
	}, "layout")
}
