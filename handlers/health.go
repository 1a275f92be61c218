package handlers

import (
	"appsus/app"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports whether the storage backend is reachable
func HealthCheck(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Repo.Ping(); err != nil {
			a.Logger.Error("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok"})
	}
}
