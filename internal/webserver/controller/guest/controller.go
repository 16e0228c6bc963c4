package guest

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/result"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type guestRepository interface {
	CreateInvited(guest *model.Guest, targets []model.InvitationTarget) error
	Update(guest *model.Guest) error
	Delete(lineupID, id string) error
	DeleteAll(lineupID string) (int64, error)
	FindInLineup(lineupID, id string) (*model.Guest, error)
	List(lineupID string, page, resultsPerPage int, filter string) (result.Paginated[[]model.Guest], error)
	All(lineupID string) ([]model.Guest, error)
}

type invitationRepository interface {
	Sync(guestID string, desired []model.InvitationTarget) (model.Plan, error)
}

type lineupRepository interface {
	FindOwned(hostID, id string) (*model.EventLineup, error)
}

type importer interface {
	Apply(lineupID string, rows []guestimport.Row, events []guestimport.EventRef) guestimport.Result
}

type Controller struct {
	repository  guestRepository
	invitations invitationRepository
	lineups     lineupRepository
	importer    importer
	config      Config
}

type Config struct {
	GuestsPerPage int
}

func NewController(repository guestRepository, invitations invitationRepository, lineups lineupRepository, importer importer, cfg Config) *Controller {
	return &Controller{
		repository:  repository,
		invitations: invitations,
		lineups:     lineups,
		importer:    importer,
		config:      cfg,
	}
}

func (g *Controller) ownedLineup(c *fiber.Ctx, lineupID string) (*model.EventLineup, error) {
	session, _ := c.Locals("Session").(model.Session)
	lineup, err := g.lineups.FindOwned(session.HostID, lineupID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.ErrInternalServerError
	}
	return lineup, nil
}

func fromForm(c *fiber.Ctx, guest *model.Guest) {
	guest.FullName = c.FormValue("full-name")
	guest.Email = c.FormValue("email")
	guest.Normalize()
}

// targetsFromForm reads the attendee limit chosen for every event of the
// lineup. Empty values mean not invited.
func targetsFromForm(c *fiber.Ctx, events []model.Event) ([]model.InvitationTarget, map[string]string) {
	errs := map[string]string{}
	targets := make([]model.InvitationTarget, 0, len(events))
	for _, event := range events {
		value := strings.TrimSpace(c.FormValue("limit-" + event.ID))
		if value == "" {
			continue
		}
		limit, err := strconv.Atoi(value)
		if err != nil || limit < model.Unlimited {
			errs["limit-"+event.ID] = "Attendee limit must be -1 (unlimited), 0 (not invited) or a positive number"
			continue
		}
		targets = append(targets, model.InvitationTarget{EventID: event.ID, AttendeeLimit: limit})
	}
	return targets, errs
}

// invitedLimits returns the attendee limit per event id of the guest, used to fill the form
func invitedLimits(guest *model.Guest) map[string]int {
	limits := make(map[string]int, len(guest.Invitations))
	for _, invitation := range guest.Invitations {
		if invitation.IsInvited {
			limits[invitation.EventID] = invitation.AttendeeLimit
		}
	}
	return limits
}

func limitsFromTargets(targets []model.InvitationTarget) map[string]int {
	limits := make(map[string]int, len(targets))
	for _, target := range targets {
		if target.AttendeeLimit != 0 {
			limits[target.EventID] = target.AttendeeLimit
		}
	}
	return limits
}

func render(c *fiber.Ctx, status int, lineup *model.EventLineup, guest *model.Guest, limits map[string]int, errs map[string]string) error {
	title := "Add guest"
	if guest.ID != "" {
		title = guest.FullName
	}
	return c.Status(status).Render("guest/edit", fiber.Map{
		"Title":  title,
		"Lineup": lineup,
		"Guest":  guest,
		"Limits": limits,
		"Errors": errs,
	}, "layout")
}
