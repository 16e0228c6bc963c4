package guest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
)

type bulkImportRequest struct {
	LineupID string                 `json:"lineupId"`
	Guests   []guestimport.Row      `json:"guests"`
	Events   []guestimport.EventRef `json:"events"`
}

type lineupRequest struct {
	LineupID string `json:"lineupId"`
}

// BulkImport adds the guests in the JSON body to a lineup. Only the lineup's own
// events are taken into account, whatever events the request lists.
func (g *Controller) BulkImport(c *fiber.Ctx) error {
	var req bulkImportRequest
	if err := c.BodyParser(&req); err != nil || req.LineupID == "" || req.Guests == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request data",
		})
	}

	lineup, err := g.ownedLineup(c, req.LineupID)
	if err != nil {
		return jsonError(c, err)
	}

	res := g.importer.Apply(lineup.ID, req.Guests, guestimport.Refs(lineup.Events))
	if !res.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to import guests",
			"errors":  res.Errors,
		})
	}

	return c.JSON(res)
}

// DeleteAll removes the whole guest list of a lineup
func (g *Controller) DeleteAll(c *fiber.Ctx) error {
	var req lineupRequest
	if err := c.BodyParser(&req); err != nil || req.LineupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request data",
		})
	}

	lineup, err := g.ownedLineup(c, req.LineupID)
	if err != nil {
		return jsonError(c, err)
	}

	count, err := g.repository.DeleteAll(lineup.ID)
	if err != nil {
		return jsonError(c, fiber.ErrInternalServerError)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}

func jsonError(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if !errors.As(err, &e) {
		e = fiber.ErrInternalServerError
	}
	msg := "Internal server error"
	if e.Code == fiber.StatusNotFound {
		msg = "Lineup not found"
	}
	return c.Status(e.Code).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
