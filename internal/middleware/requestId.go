package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestIDMiddleware fügt jeder Anfrage eine eindeutige Anforderungs-ID hinzu.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Überprüfe, ob die Anforderungs-ID bereits gesetzt ist
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" || len(requestID) > 64 {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("Fehler beim Generieren der Anforderungs-ID: %w", err)
			}
			requestID = fmt.Sprintf("FS-%s", id)
		}

		c.Locals("request_id", requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		return c.Next()
	}
}
