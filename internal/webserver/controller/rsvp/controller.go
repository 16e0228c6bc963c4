package rsvp

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type lineupRepository interface {
	FindActiveBySlug(slug string) (*model.EventLineup, error)
}

type guestRepository interface {
	Match(lineupID, fullName string) (model.MatchResult, error)
	FindByID(id string) (*model.Guest, error)
}

type workflow interface {
	Submit(ctx context.Context, submission rsvp.Submission) rsvp.Result
}

type Controller struct {
	lineups  lineupRepository
	guests   guestRepository
	workflow workflow
}

func NewController(lineups lineupRepository, guests guestRepository, workflow workflow) *Controller {
	return &Controller{
		lineups:  lineups,
		guests:   guests,
		workflow: workflow,
	}
}

// activeLineup returns the lineup in the route. Unknown and inactive lineups are not found.
func (r *Controller) activeLineup(c *fiber.Ctx) (*model.EventLineup, error) {
	lineup, err := r.lineups.FindActiveBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return lineup, nil
}

// openEvents keeps the summaries of events still accepting answers
func openEvents(lineup *model.EventLineup, summaries []model.EventSummary) []model.EventSummary {
	active := make(map[string]bool, len(lineup.Events))
	for _, event := range lineup.Events {
		active[event.ID] = true
	}
	open := make([]model.EventSummary, 0, len(summaries))
	for _, summary := range summaries {
		if active[summary.ID] {
			open = append(open, summary)
		}
	}
	return open
}
