package routers

import (
	page_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/page"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	"github.com/gofiber/fiber/v2"
)

// PageRouter schützt die Dashboard-Seiten mit dem Route-Guard (302 statt 401).
func PageRouter(app *fiber.App, deps Deps) {
	pages := page_handlers.NewPageHandler(deps.Config.WEB.DistDir, deps.I18n)
	session := middleware.LoadSession(deps.Shell, deps.Config.SESSION.CookieName)

	if dist := deps.Config.WEB.DistDir; dist != "" {
		app.Static("/assets", dist+"/assets")
	}

	app.Get("/", session, pages.Root)
	app.Get(auth_case.LoginPath, session, pages.Login)

	admin := app.Group("/admin", session, middleware.RequireDashboardRole(auth_case.RequireAdmin))
	admin.Get("/*", pages.Serve)

	seller := app.Group("/seller", session, middleware.RequireDashboardRole(auth_case.RequireSeller))
	seller.Get("/*", pages.Serve)
}
