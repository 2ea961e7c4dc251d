package handler

import "github.com/gofiber/fiber/v2"

// Health - GET /api/health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok": true,
	})
}
