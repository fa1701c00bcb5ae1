package api

import (
	"github.com/gofiber/fiber/v3"

	"scamshield/internal/models"
)

// jsonStatus returns a 200 response with the standard success/message envelope.
func jsonStatus(c fiber.Ctx, success bool, message string) error {
	return c.JSON(models.StatusResponse{Success: success, Message: message})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.StatusResponse{Success: false, Message: message})
}
