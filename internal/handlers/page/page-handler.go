package page_handlers

import (
	"path/filepath"

	"github.com/Warzoness/foodshare-manager/internal/entity"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/handlers"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	"github.com/gofiber/fiber/v2"
)

// PageResponse wird geliefert, wenn kein gebautes Dashboard konfiguriert ist.
type PageResponse struct {
	Page string                    `json:"page"`
	User *entity.AuthenticatedUser `json:"user"`
}

type PageHandler struct {
	distDir string
	i18n    internal_i18n.Service
}

// NewPageHandler: distDir leer => JSON statt index.html.
func NewPageHandler(distDir string, i18n internal_i18n.Service) *PageHandler {
	return &PageHandler{distDir: distDir, i18n: i18n}
}

// Serve liefert die Dashboard-Seite. Die Rolle wurde bereits von RequireDashboardRole geprüft.
func (h *PageHandler) Serve(c *fiber.Ctx) error {
	if h.distDir != "" {
		return c.SendFile(filepath.Join(h.distDir, "index.html"))
	}

	var user *entity.AuthenticatedUser
	if session, ok := middleware.CurrentSession(c); ok {
		user = session.User()
	}

	reqID := handlers.GetRequestID(c)
	resp := PageResponse{Page: c.Path(), User: user}
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_page", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// Login zeigt die Anmeldeseite. Wer schon angemeldet ist, landet im eigenen Dashboard.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	if session, ok := middleware.CurrentSession(c); ok {
		if user := session.User(); user != nil && user.Role.IsValid() {
			return c.Redirect(user.Role.Dashboard(), fiber.StatusFound)
		}
	}
	return h.Serve(c)
}

// Root leitet "/" auf die Anmeldung oder das eigene Dashboard um.
func (h *PageHandler) Root(c *fiber.Ctx) error {
	if session, ok := middleware.CurrentSession(c); ok {
		if user := session.User(); user != nil && user.Role.IsValid() {
			return c.Redirect(user.Role.Dashboard(), fiber.StatusFound)
		}
	}
	return c.Redirect(auth_case.LoginPath, fiber.StatusFound)
}
