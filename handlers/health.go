package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}

	if sessionStorage != nil {
		health["session_cache"] = sessionStorage.Stats()
	} else {
		health["status"] = "unhealthy"
		health["session_cache"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	}

	return c.JSON(health)
}
