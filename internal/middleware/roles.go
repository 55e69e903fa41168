package middleware

import (
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	"github.com/Warzoness/foodshare-manager/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SessionLocal ist der Key, unter dem die geöffnete Sitzung in c.Locals liegt.
const SessionLocal = "session"

// LoadSession öffnet die Sitzung aus dem Cookie und legt sie in c.Locals ab.
// Ohne (gültiges) Cookie entsteht eine leere Sitzung ohne Benutzer.
func LoadSession(shell auth_case.ShellContract, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if !utils.IsValidSessionID(sid) {
			sid = ""
		}
		session, err := shell.Open(c.UserContext(), sid)
		if err != nil {
			return err
		}
		c.Locals(SessionLocal, session)
		return c.Next()
	}
}

// CurrentSession liest die von LoadSession abgelegte Sitzung.
func CurrentSession(c *fiber.Ctx) (*auth_case.Session, bool) {
	session, ok := c.Locals(SessionLocal).(*auth_case.Session)
	return session, ok && session != nil
}

// RequireDashboardRole leitet per 302 um, wenn der Benutzer die Rolle nicht erfüllt.
// Muss nach LoadSession laufen.
func RequireDashboardRole(required auth_case.RequiredRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := CurrentSession(c)
		if !ok {
			return c.Redirect(auth_case.LoginPath, fiber.StatusFound)
		}

		decision := auth_case.Guard(session.User(), required)
		if !decision.Allowed {
			reqID, _ := c.Locals("request_id").(string)
			log.Debug().Str("[request_id]", reqID).Str("path", c.Path()).Str("redirect", decision.Redirect).Msg("Navigation umgeleitet")
			return c.Redirect(decision.Redirect, fiber.StatusFound)
		}
		return c.Next()
	}
}
