package auth

import (
	"github.com/gofiber/fiber/v2"
)

func (a *Controller) Login(c *fiber.Ctx) error {
	msg := ""
	if c.Query("registered") == "true" {
		msg = "Account created. Please sign in."
	}

	return c.Render("auth/login", fiber.Map{
		"Title":            "Login",
		"Success":          msg,
		"DisableLoginLink": true,
	}, "layout")
}
