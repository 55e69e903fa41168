package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthRouter registriert Health- und Readiness-Endpoints auf dem gegebenen Fiber-Router.
// readyz prüft nur Redis, nicht das Backend.
func HealthRouter(app fiber.Router, rdb redis.Cmdable) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": "Service lebt.",
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})

	// Ohne Redis gibt es keine Sitzungen, also ist der Dienst nicht bereit
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if rdb == nil || rdb.Ping(c.UserContext()).Err() != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "Fehlversuch",
				"error":  "Redis ist nicht bereit.",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Bereit",
			"message": "Redis und App sind einsatzbereit.",
		})
	})
}
