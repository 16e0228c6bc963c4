package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Get("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Login)
	app.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)
	app.Get("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Register)
	app.Post("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignUp)
	app.Get("/logout", controllers.Auth.SignOut)

	events := app.Group("/events/:slug")
	events.Get("/", controllers.RSVP.Show)
	events.Post("/lookup", controllers.LookupRateLimitMiddleware, controllers.RSVP.Lookup)
	events.Post("/rsvp", controllers.RSVP.Submit)
	events.Get("/thank-you", controllers.RSVP.ThankYou)

	api := app.Group("/api", controllers.RequireAuthenticationMiddleware)
	api.Post("/guests/bulk-import", controllers.Guests.BulkImport)
	api.Post("/guests/delete-all", controllers.Guests.DeleteAll)
	api.Post("/responses/delete-all", controllers.Responses.DeleteAll)

	dashboard := app.Group("/dashboard", controllers.RequireAuthenticationMiddleware)
	dashboard.Get("/", controllers.Lineups.List)
	dashboard.Post("/", controllers.Lineups.Create)

	lineup := dashboard.Group("/:lineupId<guid>")
	lineup.Get("/", controllers.Lineups.Detail)
	lineup.Post("/", controllers.Lineups.Update)
	lineup.Post("/delete", controllers.Lineups.Delete)

	lineup.Get("/events/new", controllers.Events.New)
	lineup.Post("/events", controllers.Events.Create)
	lineup.Get("/events/:eventId<guid>/edit", controllers.Events.Edit)
	lineup.Post("/events/:eventId<guid>/edit", controllers.Events.Update)
	lineup.Post("/events/:eventId<guid>/delete", controllers.Events.Delete)

	lineup.Get("/guests", controllers.Guests.List)
	lineup.Get("/guests/new", controllers.Guests.New)
	lineup.Post("/guests", controllers.Guests.Create)
	lineup.Get("/guests/export", controllers.Guests.Export)
	lineup.Get("/guests/template", controllers.Guests.Template)
	lineup.Post("/guests/import", controllers.Guests.Import)
	lineup.Get("/guests/:guestId<guid>/edit", controllers.Guests.Edit)
	lineup.Post("/guests/:guestId<guid>/edit", controllers.Guests.Update)
	lineup.Post("/guests/:guestId<guid>/delete", controllers.Guests.Delete)

	lineup.Get("/responses", controllers.Responses.List)
	lineup.Get("/responses/export", controllers.Responses.Export)
	lineup.Post("/responses/:responseId<guid>/delete", controllers.Responses.Delete)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})
}
