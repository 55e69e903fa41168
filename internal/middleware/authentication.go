package middleware

import (
	"strings"

	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	bearerPrefix = "Bearer "
	// placeholderToken wird vom Dashboard nach einer abgelaufenen Sitzung gesetzt.
	placeholderToken = "invalid_token"
)

// RequireBearer prüft das Authorization-Header nur oberflächlich:
// Präfix "Bearer ", nicht leer und nicht der Platzhalter "invalid_token".
// Das Token selbst prüft allein das Backend.
func RequireBearer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := BearerToken(c.Get(fiber.HeaderAuthorization)); !ok {
			reqID, _ := c.Locals("request_id").(string)
			log.Debug().Str("[request_id]", reqID).Str("path", c.Path()).Msg("Bearer-Token fehlt oder ist ungültig")
			return app_errors.NewInvalidBearer()
		}
		return c.Next()
	}
}

// BearerToken liefert das Token aus dem Header und ob es die Formprüfung besteht.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" || token == placeholderToken {
		return "", false
	}
	return token, true
}
