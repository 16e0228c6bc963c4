package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return session
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return session
	}
	if value, ok := claims["hostId"].(string); ok {
		session.HostID = value
	}
	if value, ok := claims["email"].(string); ok {
		session.Email = value
	}

	return session
}
