package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func (a *Controller) Register(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title":             "Create account",
		"MinPasswordLength": a.config.MinPasswordLength,
		"Errors":            map[string]string{},
		"Host":              model.Host{},
		"DisableLoginLink":  true,
	}, "layout")
}

// SignUp creates a host account from the registration form and signs it in
func (a *Controller) SignUp(c *fiber.Ctx) error {
	host := model.Host{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}
	password := c.FormValue("password")

	errs := host.Validate(password, a.config.MinPasswordLength)
	if password != c.FormValue("confirm-password") {
		errs["confirmpassword"] = "Passwords do not match"
	}

	if len(errs) == 0 {
		if err := host.SetPassword(password); err != nil {
			return fiber.ErrInternalServerError
		}
		err := a.repository.Create(&host)
		switch {
		case errors.Is(err, model.ErrConflict):
			errs["email"] = "An account with this email address already exists"
		case err != nil:
			return fiber.ErrInternalServerError
		}
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("auth/register", fiber.Map{
			"Title":             "Create account",
			"MinPasswordLength": a.config.MinPasswordLength,
			"Errors":            errs,
			"Host":              host,
			"DisableLoginLink":  true,
		}, "layout")
	}

	signedToken, err := GenerateToken(&host, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	SetSessionCookie(c, signedToken)

	return c.Redirect("/dashboard")
}
