package guest

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/spreadsheet"
)

// Export downloads the guest list as a spreadsheet, with a column per event holding each guest's attendee limit
func (g *Controller) Export(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	guests, err := g.repository.All(lineup.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	f, err := spreadsheet.GuestsWorkbook(guests, lineup.Events)
	if err != nil {
		log.Printf("error generating guests spreadsheet: %s\n", err)
		return fiber.ErrInternalServerError
	}
	defer f.Close()

	c.Attachment(spreadsheet.Filename(lineup.Slug, "guests", time.Now()))
	return f.Write(c)
}

// Template downloads a sample spreadsheet to be filled and imported
func (g *Controller) Template(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	f, err := spreadsheet.TemplateWorkbook(lineup.Events)
	if err != nil {
		log.Printf("error generating template spreadsheet: %s\n", err)
		return fiber.ErrInternalServerError
	}
	defer f.Close()

	c.Attachment("guest_import_template.xlsx")
	return f.Write(c)
}
