package webserver

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/lineup-rsvp/lineup/internal/i18n"
	"github.com/lineup-rsvp/lineup/internal/webserver/controller/auth"
)

// SetFQDN composes the Fully Qualified Domain Name of the host running the app and sets it
// as a local variable of the request
func SetFQDN(cfg Config) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		c.Locals("fqdn", fmt.Sprintf("%s://%s",
			c.Protocol(),
			cfg.FQDN,
		))
		return c.Next()
	}
}

// SetLanguage picks the interface language from the Accept-Language header
func SetLanguage(c *fiber.Ctx) error {
	c.Locals("Lang", i18n.BestLanguage(c.Get(fiber.HeaderAcceptLanguage)))
	c.Locals("Version", c.App().Config().AppName)
	return c.Next()
}

// AllowIfNotLoggedIn sends logged in hosts to their dashboard
func AllowIfNotLoggedIn(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + auth.SessionCookie,
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Redirect("/dashboard")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// RequireAuthentication only lets requests with a valid session through. An
// invalid session cookie is removed. Browsers are sent to the login page while
// API clients get an unauthorized JSON response.
func RequireAuthentication(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + auth.SessionCookie,
		SuccessHandler: func(c *fiber.Ctx) error {
			session := sessionData(c)
			if session.HostID == "" {
				return unauthorized(c)
			}
			c.Locals("Session", session)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

func unauthorized(c *fiber.Ctx) error {
	if c.Cookies(auth.SessionCookie) != "" {
		auth.ClearSessionCookie(c)
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Unauthorized",
		})
	}
	return c.Redirect("/login")
}
