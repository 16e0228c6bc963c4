package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// SessionCookie is the name of the cookie holding the session token
const SessionCookie = "session"

// SignIn checks the host's credentials and gives them a JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	host, err := a.repository.FindByEmail(strings.ToLower(strings.TrimSpace(c.FormValue("email"))))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fiber.ErrInternalServerError
	}

	// If email or password are incorrect, do not allow access.
	if host == nil || !host.CheckPassword(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":            "Login",
			"Error":            "Wrong email or password",
			"Email":            c.FormValue("email"),
			"DisableLoginLink": true,
		}, "layout")
	}

	signedToken, err := GenerateToken(host, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	SetSessionCookie(c, signedToken)
	return c.Redirect("/dashboard")
}

// GenerateToken signs a session token for host. Tokens do not expire.
func GenerateToken(host *model.Host, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"hostId": host.ID,
		"email":  host.Email,
	})

	return token.SignedString(secret)
}

func SetSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   34560000, // 400 days which is the life limit imposed by Chrome
		Secure:   false,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie from the browser
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})
}
