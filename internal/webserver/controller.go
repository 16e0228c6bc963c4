package webserver

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/auth"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/event"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/guest"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/lineup"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/response"
	rsvpcontroller "github.com/lineup-rsvp/lineup/internal/webserver/controller/rsvp"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"gorm.io/gorm"
)

// Sender delivers emails, see infrastructure for the available transports
type Sender interface {
	Send(ctx context.Context, msg confirmation.Message) (string, error)
}

type Controllers struct {
	Auth                            *auth.Controller
	Lineups                         *lineup.Controller
	Events                          *event.Controller
	Guests                          *guest.Controller
	Responses                       *response.Controller
	RSVP                            *rsvpcontroller.Controller
	RequireAuthenticationMiddleware func(c *fiber.Ctx) error
	AllowIfNotLoggedInMiddleware    func(c *fiber.Ctx) error
	LookupRateLimitMiddleware       func(c *fiber.Ctx) error
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	hostsRepository := &model.HostRepository{DB: db}
	lineupsRepository := &model.LineupRepository{DB: db}
	eventsRepository := &model.EventRepository{DB: db}
	guestsRepository := &model.GuestRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	responsesRepository := &model.ResponseRepository{DB: db}
	emailLogsRepository := &model.EmailLogRepository{DB: db}

	composer, err := confirmation.NewComposer(cfg.FromEmail, cfg.FQDN)
	if err != nil {
		log.Fatal(err)
	}

	workflow := rsvp.NewWorkflow(
		guestsRepository,
		responsesRepository,
		eventsRepository,
		emailLogsRepository,
		composer,
		sender,
		cfg.EmailTimeout,
	)

	importer := guestimport.NewImporter(guestsRepository, invitationsRepository)

	authCfg := auth.Config{
		Secret:            cfg.JwtSecret,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	eventsCfg := event.Config{
		DefaultTimezone: cfg.DefaultTimezone,
	}

	guestsCfg := guest.Config{
		GuestsPerPage: cfg.GuestsPerPage,
	}

	return Controllers{
		Auth:                            auth.NewController(hostsRepository, authCfg),
		Lineups:                         lineup.NewController(lineupsRepository),
		Events:                          event.NewController(eventsRepository, lineupsRepository, eventsCfg),
		Guests:                          guest.NewController(guestsRepository, invitationsRepository, lineupsRepository, importer, guestsCfg),
		Responses:                       response.NewController(responsesRepository, lineupsRepository),
		RSVP:                            rsvpcontroller.NewController(lineupsRepository, guestsRepository, workflow),
		RequireAuthenticationMiddleware: RequireAuthentication(cfg.JwtSecret),
		AllowIfNotLoggedInMiddleware:    AllowIfNotLoggedIn(cfg.JwtSecret),
		LookupRateLimitMiddleware:       RateLimit(NewRateLimiter(cfg.LookupRate, cfg.LookupBurst)),
	}
}
