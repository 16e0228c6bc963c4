package response

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/spreadsheet"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type responseRepository interface {
	ListByLineup(lineupID string) ([]model.Response, error)
	Delete(lineupID, id string) error
	DeleteAll(lineupID string) (int64, error)
}

type lineupRepository interface {
	FindOwned(hostID, id string) (*model.EventLineup, error)
}

type Controller struct {
	repository responseRepository
	lineups    lineupRepository
}

func NewController(repository responseRepository, lineups lineupRepository) *Controller {
	return &Controller{
		repository: repository,
		lineups:    lineups,
	}
}

func (r *Controller) ownedLineup(c *fiber.Ctx, lineupID string) (*model.EventLineup, error) {
	session, _ := c.Locals("Session").(model.Session)
	lineup, err := r.lineups.FindOwned(session.HostID, lineupID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return lineup, nil
}

// Summary holds the headcount of an event
type Summary struct {
	Event     model.Event
	Attending int
	Declined  int
	Guests    int
}

func summarize(events []model.Event, responses []model.Response) []Summary {
	summaries := make([]Summary, len(events))
	index := make(map[string]int, len(events))
	for i, event := range events {
		summaries[i].Event = event
		index[event.ID] = i
	}
	for _, response := range responses {
		i, ok := index[response.EventID]
		if !ok {
			continue
		}
		if response.IsAttending {
			summaries[i].Attending++
			summaries[i].Guests += response.AttendeeCount
		} else {
			summaries[i].Declined++
		}
	}
	return summaries
}

// List shows every response received for the lineup's events, with a headcount per event
func (r *Controller) List(c *fiber.Ctx) error {
	lineup, err := r.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	responses, err := r.repository.ListByLineup(lineup.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("response/index", fiber.Map{
		"Title":     "Responses",
		"Lineup":    lineup,
		"Responses": responses,
		"Summaries": summarize(lineup.Events, responses),
	}, "layout")
}

func (r *Controller) Delete(c *fiber.Ctx) error {
	lineup, err := r.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	if err := r.repository.Delete(lineup.ID, c.Params("responseId")); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/dashboard/%s/responses", lineup.ID))
}

// Export downloads the lineup's responses as a spreadsheet
func (r *Controller) Export(c *fiber.Ctx) error {
	lineup, err := r.ownedLineup(c, c.Params("lineupId"))
	if err != nil {
		return err
	}

	responses, err := r.repository.ListByLineup(lineup.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	f, err := spreadsheet.ResponsesWorkbook(responses)
	if err != nil {
		log.Printf("error generating responses spreadsheet: %s\n", err)
		return fiber.ErrInternalServerError
	}
	defer f.Close()

	c.Attachment(spreadsheet.Filename(lineup.Slug, "responses", time.Now()))
	return f.Write(c)
}

// DeleteAll removes every response given to a lineup's events
func (r *Controller) DeleteAll(c *fiber.Ctx) error {
	var req struct {
		LineupID string `json:"lineupId"`
	}
	if err := c.BodyParser(&req); err != nil || req.LineupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request data",
		})
	}

	lineup, err := r.ownedLineup(c, req.LineupID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Lineup not found",
		})
	}

	count, err := r.repository.DeleteAll(lineup.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}
