package middleware

import (
	"errors"
	"net/http"

	"github.com/Warzoness/foodshare-manager/internal/dtos"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware rendert jeden Fehler als Envelope. Nichts erreicht die Standard-Fehlerseite von Fiber.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = internal_i18n.DefaultLang
		}

		var appErr *app_errors.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			appErr = fromFiberError(fiberErr)
		default:
			appErr = app_errors.NewAppError(
				fiber.StatusInternalServerError,
				app_errors.ErrInternal,
				"internal_error",
				err,
			)
		}

		message := appErr.Literal
		if message == "" {
			message = i18nSvc.T(lang, appErr.MessageKey, appErr.Params)
		}

		detail := appErr.Detail
		if detail == "" {
			detail = http.StatusText(appErr.Code)
		}

		reqID, _ := c.Locals("request_id").(string)

		resp := dtos.Envelope[any]{
			Success:   false,
			Data:      appErr.Data,
			Error:     detail,
			Message:   message,
			Code:      appErr.Type,
			RequestID: reqID,
		}

		for _, d := range appErr.Details {
			resp.Details = append(resp.Details, dtos.FieldDetail{
				Field:   d.Field,
				Reason:  d.Reason,
				Message: i18nSvc.T(lang, d.MessageKey, d.Params),
			})
		}

		if appErr.Err != nil && appErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("[request_id]", reqID).Msg("application error")
		} else if appErr.Err != nil {
			log.Debug().Err(appErr.Err).Str("[request_id]", reqID).Msg("request rejected")
		}

		return c.Status(appErr.Code).JSON(resp)
	}
}

func fromFiberError(e *fiber.Error) *app_errors.AppError {
	switch e.Code {
	case fiber.StatusNotFound:
		return &app_errors.AppError{Code: e.Code, Type: app_errors.ErrNotFound, MessageKey: "not_found.route", Detail: app_errors.TextNotFound}
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		return &app_errors.AppError{Code: fiber.StatusBadRequest, Type: app_errors.ErrInvalidBody, MessageKey: "request.invalid_body", Err: e}
	case fiber.StatusTooManyRequests:
		return &app_errors.AppError{Code: e.Code, Type: app_errors.ErrTooManyRequests, MessageKey: "response.too_many_requests", Detail: app_errors.TextTooMany}
	}
	if e.Code >= fiber.StatusInternalServerError {
		return app_errors.NewAppError(e.Code, app_errors.ErrInternal, "internal_error", e)
	}
	return &app_errors.AppError{Code: e.Code, Type: app_errors.ErrValidation, MessageKey: "invalid_request", Detail: e.Message}
}
