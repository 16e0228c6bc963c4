package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Logs out host and removes their JWT.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	ClearSessionCookie(c)

	return c.Redirect("/login")
}
