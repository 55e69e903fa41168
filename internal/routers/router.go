package routers

import (
	"github.com/Warzoness/foodshare-manager/internal/config"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	user_case "github.com/Warzoness/foodshare-manager/internal/use-cases/user-case"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Deps sind die beim Start gebauten Abhängigkeiten aller Router.
type Deps struct {
	Config *config.AppConfig
	Proxy  *proxy_handlers.Proxy
	Shell  auth_case.ShellContract
	Users  user_case.UserServiceContract
	I18n   internal_i18n.Service
	Redis  redis.Cmdable
	// LimiterStorage ist der gemeinsame Speicher des Login-Limiters. nil => Speicher im Prozess.
	LimiterStorage fiber.Storage
}

// SetupRoutes richtet die API- und Seitenrouten ein.
func SetupRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	HealthRouter(api, deps.Redis)
	AuthRouter(api, deps)
	ShopRouter(api, deps.Proxy)
	ProductRouter(api, deps.Proxy)
	OrderRouter(api, deps.Proxy)
	UserRouter(api, deps.Proxy, deps.Users)
	AdminRouter(api, deps.Proxy)
	SellerRouter(api, deps.Proxy)

	// Unbekannte API-Pfade bekommen das not-found-Envelope, nicht die Dashboard-Seite
	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	PageRouter(app, deps)
}
