package auth_handlers

import (
	"time"

	"github.com/Warzoness/foodshare-manager/internal/config"
	auth_dto "github.com/Warzoness/foodshare-manager/internal/dtos/auth-dto"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/handlers"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	"github.com/Warzoness/foodshare-manager/internal/utils"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	proxy   *proxy_handlers.Proxy
	shell   auth_case.ShellContract
	i18n    internal_i18n.Service
	session SessionCookie
}

// SessionCookie beschreibt das Cookie, das die Sitzungs-ID trägt.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func CookieFromConfig(cfg *config.AppConfig) SessionCookie {
	return SessionCookie{
		Name:   cfg.SESSION.CookieName,
		TTL:    cfg.SESSION.TTL,
		Secure: cfg.SESSION.Secure,
	}
}

func NewAuthHandler(proxy *proxy_handlers.Proxy, shell auth_case.ShellContract, i18n internal_i18n.Service, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{
		proxy:   proxy,
		shell:   shell,
		i18n:    i18n,
		session: cookie,
	}
}

// Login leitet die Anmeldedaten an das Backend weiter. Bei Erfolg wird der Benutzer
// in eine neue Sitzung übernommen und die Antwort des Backends unverändert zurückgegeben.
func (h *AuthHandler) Login() fiber.Handler {
	return h.proxy.ForwardToBackend(proxy_handlers.Route{
		Resource:     "auth",
		UpstreamPath: "/back-office/auth/login",
		Body:         func() any { return &auth_dto.LoginRequest{} },
		OnSuccess:    h.commitLogin,
	})
}

func (h *AuthHandler) commitLogin(c *fiber.Ctx, body []byte) error {
	var resp auth_dto.LoginResponse
	if len(body) == 0 {
		return app_errors.NewUpstreamFailure(nil)
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return app_errors.NewUpstreamFailure(err)
	}

	// Neue ID bei jedem Login, eine alte Sitzung wird nicht wiederverwendet
	session, err := h.shell.Open(c.UserContext(), utils.NewSessionID())
	if err != nil {
		return err
	}
	if err := session.Login(c.UserContext(), resp.Data.User); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.session.Name,
		Value:    session.ID(),
		Path:     "/",
		Expires:  time.Now().Add(h.session.TTL),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("[request_id]", handlers.GetRequestID(c)).Int64("user_id", resp.Data.User.ID).Str("role", string(resp.Data.User.Role)).Msg("Back-Office-Anmeldung")
	return nil
}

// Logout ruft das Backend-Logout auf und leert danach die Sitzung, auch wenn das Backend scheitert.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if ok {
		if err := session.Logout(c.UserContext(), c.Get(fiber.HeaderAuthorization)); err != nil {
			return err
		}
	}

	c.ClearCookie(h.session.Name)

	reqID := handlers.GetRequestID(c)
	webResp := handlers.CreateResponse[any](h.i18n.T(handlers.GetLang(c), "response.success_logout", nil), nil, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// Session liefert den Zustand der Dashboard-Sitzung ({user, loading}).
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	resp := auth_dto.SessionResponse{}
	if session, ok := middleware.CurrentSession(c); ok {
		state := session.State()
		resp.User = state.User
		resp.Loading = state.Loading
	}

	reqID := handlers.GetRequestID(c)
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_session", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// Me leitet an das Backend weiter. Das Bearer-Token prüft die vorgeschaltete Middleware.
func (h *AuthHandler) Me() fiber.Handler {
	return h.proxy.ForwardToBackend(proxy_handlers.Route{
		Resource:     "auth",
		Method:       fiber.MethodGet,
		UpstreamPath: "/back-office/auth/me",
	})
}

// ChangePassword hat noch kein Gegenstück im Backend.
func (h *AuthHandler) ChangePassword() fiber.Handler {
	return h.proxy.NotImplemented("", h.proxy.RequireBody(func() any { return &auth_dto.ChangePasswordRequest{} }))
}
