package routers

import (
	auth_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/auth"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// AuthRouter richtet die Authentifizierungsrouten des Back-Office ein.
func AuthRouter(api fiber.Router, deps Deps) {
	cookie := auth_handlers.CookieFromConfig(deps.Config)
	authHandler := auth_handlers.NewAuthHandler(deps.Proxy, deps.Shell, deps.I18n, cookie)

	r := api.Group("/back-office/auth", middleware.LoadSession(deps.Shell, cookie.Name))

	r.Post("/login", limiter.New(limiter.Config{
		Max:        deps.Config.LIMITER.LoginMax,
		Expiration: deps.Config.LIMITER.LoginWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "login:ip:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
		Storage: deps.LimiterStorage,
	}), authHandler.Login())
	r.Post("/logout", authHandler.Logout)
	r.Get("/session", authHandler.Session)
	r.Get("/me", middleware.RequireBearer(), authHandler.Me())
	r.Put("/change-password", middleware.RequireBearer(), authHandler.ChangePassword())
}
