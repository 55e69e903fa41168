package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert eingehende Anfragen und deren Antworten.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Der ErrorHandler setzt den Status erst, also hier schon rendern
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}
		duration := time.Since(start)

		reqID, _ := c.Locals("request_id").(string)

		event := log.Info()
		if status := c.Response().StatusCode(); status >= fiber.StatusInternalServerError {
			event = log.Error()
		} else if status >= fiber.StatusBadRequest {
			event = log.Warn()
		}
		event.Str("[request_id]", reqID).Msgf("%s %s (%v) %d", c.Method(), c.Path(), duration, c.Response().StatusCode())

		return err
	}
}
