package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

var errorPages = map[int]bool{
	fiber.StatusNotFound:            true,
	fiber.StatusTooManyRequests:     true,
	fiber.StatusInternalServerError: true,
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	} else {
		log.Println(err)
	}

	page := code
	if !errorPages[page] {
		page = fiber.StatusInternalServerError
	}

	// Send custom error page
	err = c.Status(code).Render(
		"errors/error",
		fiber.Map{
			"Title":   fmt.Sprintf("%d", code),
			"Code":    code,
			"Message": errorMessage(page),
		},
		"layout")

	if err != nil {
		log.Println(err)
		// In case the Render fails
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return nil
}

func errorMessage(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "The page you are looking for does not exist."
	case fiber.StatusTooManyRequests:
		return "Too many attempts, please wait a moment and try again."
	}
	return "Something went wrong, please try again later."
}
