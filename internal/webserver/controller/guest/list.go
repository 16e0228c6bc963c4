package guest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"github.com/lineup-rsvp/lineup/internal/webserver/view"
)

// List shows a page of the lineup's guest list, optionally filtered by name or email
func (g *Controller) List(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	return g.renderList(c, fiber.StatusOK, lineup, nil, "")
}

func (g *Controller) renderList(c *fiber.Ctx, status int, lineup *model.EventLineup, imported *guestimport.Result, importError string) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	search := c.Query("search")

	guests, err := g.repository.List(lineup.ID, page, g.config.GuestsPerPage, search)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(status).Render("guest/index", fiber.Map{
		"Title":       "Guests",
		"Lineup":      lineup,
		"Guests":      guests.Hits(),
		"Total":       guests.TotalHits(),
		"Search":      search,
		"Paginator":   view.Pagination(model.MaxPagesNavigator, guests, map[string]string{"search": search}),
		"URL":         view.URL(c),
		"Imported":    imported,
		"ImportError": importError,
	}, "layout")
}
