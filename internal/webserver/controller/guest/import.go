package guest

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/spreadsheet"
)

// Import reads the spreadsheet uploaded in the "file" field and adds its guests to the lineup
func (g *Controller) Import(c *fiber.Ctx) error {
	lineup, err := g.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return g.renderList(c, fiber.StatusBadRequest, lineup, nil, "No file received")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}
	defer file.Close()

	rows, err := spreadsheet.ParseGuests(file, lineup.Events)
	if err != nil {
		return g.renderList(c, fiber.StatusBadRequest, lineup, nil, err.Error())
	}

	res := g.importer.Apply(lineup.ID, rows, guestimport.Refs(lineup.Events))
	status := fiber.StatusOK
	if !res.Success {
		status = fiber.StatusUnprocessableEntity
	}
	return g.renderList(c, status, lineup, &res, "")
}
