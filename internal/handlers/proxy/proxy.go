package proxy_handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Warzoness/foodshare-manager/internal/backend"
	"github.com/Warzoness/foodshare-manager/internal/dtos"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/handlers"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

// dateKeys werden als Datum (YYYY-MM-DD) geprüft.
var dateKeys = map[string]bool{"fromDate": true, "toDate": true}

var errInvalidJSON = errors.New("backend antwortete ohne gültiges JSON")

// Proxy stellt die drei Handler-Varianten bereit: Weiterleitung, Stub und Mock-Daten.
type Proxy struct {
	backend   backend.Client
	validator *validator.Validate
	i18n      internal_i18n.Service
}

func NewProxy(client backend.Client, i18n internal_i18n.Service) *Proxy {
	return &Proxy{
		backend:   client,
		validator: handlers.NewValidator(),
		i18n:      i18n,
	}
}

func (p *Proxy) Validator() *validator.Validate {
	return p.validator
}

// ForwardToBackend übersetzt einen eingehenden Request in genau einen Backend-Aufruf
// und formt das Ergebnis in das Envelope um.
func (p *Proxy) ForwardToBackend(route Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Pfadparameter prüfen, bevor irgendetwas rausgeht
		path := route.UpstreamPath
		if route.IDParam != "" {
			id, err := handlers.GetParamID(c, route.IDParam)
			if err != nil {
				return err
			}
			path = strings.ReplaceAll(path, ":"+route.IDParam, strconv.FormatInt(id, 10))
		}

		// 2. Query-Parameter abbilden
		query, page, err := p.buildQuery(c, route)
		placeholder := route.placeholder(page)
		if err != nil {
			return err.WithData(placeholder)
		}

		// 3. Body validieren, dann unverändert weitergeben
		var body []byte
		if route.Body != nil {
			if err := handlers.ParseBody(c, p.validator, route.Body()); err != nil {
				return err.WithData(placeholder)
			}
			body = append([]byte(nil), c.Body()...)
		}

		method := route.Method
		if method == "" {
			method = c.Method()
		}

		reqID := handlers.GetRequestID(c)
		resp, callErr := p.backend.Do(c.UserContext(), backend.Request{
			Method:        method,
			Path:          path,
			Query:         query,
			Body:          body,
			Authorization: c.Get(fiber.HeaderAuthorization),
			Language:      handlers.GetLang(c),
			RequestID:     reqID,
		})
		if callErr != nil {
			return app_errors.NewUpstreamFailure(callErr).WithData(placeholder)
		}

		// 4. Ergebnis abbilden
		if !resp.IsSuccess() {
			log.Warn().Str("[request_id]", reqID).Str("resource", route.Resource).Int("status", resp.Status).Msg("Backend lieferte einen Fehler")
			return app_errors.MapUpstreamStatus(resp.Status, resp.Body, route.Resource, route.NotFound).WithData(placeholder)
		}

		// 204 oder leerer Body: es gibt nichts durchzureichen
		if len(resp.Body) == 0 {
			if route.OnSuccess != nil {
				if err := route.OnSuccess(c, nil); err != nil {
					return err
				}
			}
			return c.Status(fiber.StatusOK).JSON(handlers.CreateResponse[any]("", nil, reqID))
		}

		if !json.Valid(resp.Body) {
			log.Error().Str("[request_id]", reqID).Str("resource", route.Resource).Msg("Backend-Antwort ist kein JSON")
			return app_errors.NewUpstreamFailure(errInvalidJSON).WithData(placeholder)
		}

		if route.OnSuccess != nil {
			if err := route.OnSuccess(c, resp.Body); err != nil {
				return err
			}
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Status(fiber.StatusOK).Send(resp.Body)
	}
}

func (p *Proxy) buildQuery(c *fiber.Ctx, route Route) (url.Values, dtos.Pagination, *app_errors.AppError) {
	query := url.Values{}
	page := dtos.Pagination{Page: dtos.DefaultPage, Size: dtos.DefaultSize}

	if route.Paginated {
		parsed, err := handlers.GetPagination(c)
		if err != nil {
			return nil, page, err
		}
		page = parsed
		query.Set("page", strconv.Itoa(page.Page))
		query.Set("size", strconv.Itoa(page.Size))
		for _, s := range page.Sort {
			query.Add("sort", s)
		}
	}

	for _, key := range route.Query {
		value := strings.TrimSpace(c.Query(key))
		if value == "" {
			continue
		}
		if dateKeys[key] {
			if _, err := time.Parse(dateLayout, value); err != nil {
				appErr := app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_date", err)
				appErr.Detail = "Invalid " + key + ": " + value
				return nil, page, appErr
			}
		}
		query.Set(key, value)
	}

	return query, page, nil
}

// NotImplemented prüft die Eingaben und antwortet danach immer mit 501.
func (p *Proxy) NotImplemented(message string, checks ...Check) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, check := range checks {
			if err := check(c); err != nil {
				return err
			}
		}
		log.Debug().Str("[request_id]", handlers.GetRequestID(c)).Str("path", c.Path()).Msg("Stub-Endpunkt aufgerufen")
		return app_errors.NewNotImplemented(message)
	}
}

// RequireID prüft einen positiven ganzzahligen Pfadparameter.
func RequireID(name string) Check {
	return func(c *fiber.Ctx) error {
		if _, err := handlers.GetParamID(c, name); err != nil {
			return err
		}
		return nil
	}
}

// RequireBody validiert den Body gegen das DTO von newDst.
func (p *Proxy) RequireBody(newDst func() any) Check {
	return func(c *fiber.Ctx) error {
		if err := handlers.ParseBody(c, p.validator, newDst()); err != nil {
			return err
		}
		return nil
	}
}

// MockDataset beantwortet einen Request aus eingebetteten Daten, ohne Backend.
type MockDataset interface {
	Lookup(c *fiber.Ctx) (any, *app_errors.AppError)
}

// StaticMockData antwortet aus einem festen Datensatz im Speicher.
func (p *Proxy) StaticMockData(messageKey string, dataset MockDataset) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := dataset.Lookup(c)
		if err != nil {
			return err
		}
		reqID := handlers.GetRequestID(c)
		webResp := handlers.CreateResponse(p.i18n.T(handlers.GetLang(c), messageKey, nil), data, reqID)
		if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
			return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
		}
		return nil
	}
}
