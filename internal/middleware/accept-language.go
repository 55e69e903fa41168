package middleware

import (
	"strings"

	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware ruft Accept-Language vom Header ab und speichert den Wert bei c.Locals.
// Unterstützt werden "vi" (Standard) und "en".
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAcceptLanguage, internal_i18n.DefaultLang)
		lang := strings.Split(raw, ",")[0] // "vi-VN,vi;q=0.9,en-US;q=0.8,en;q=0.7"
		lang = strings.ToLower(strings.TrimSpace(strings.Split(strings.Split(lang, ";")[0], "-")[0]))
		switch lang {
		case "vi", "en":
		default:
			lang = internal_i18n.DefaultLang
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
