package handlers

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Warzoness/foodshare-manager/internal/dtos"
	order_dto "github.com/Warzoness/foodshare-manager/internal/dtos/order-dto"
	product_dto "github.com/Warzoness/foodshare-manager/internal/dtos/product-dto"
	shop_dto "github.com/Warzoness/foodshare-manager/internal/dtos/shop-dto"
	user_dto "github.com/Warzoness/foodshare-manager/internal/dtos/user-dto"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	internal_i18n "github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt ein erfolgreiches Envelope.
func CreateResponse[T any](message string, data T, requestID string) dtos.Envelope[T] {
	return dtos.Envelope[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID,
	}
}

// NewValidator registriert die eigenen Tags und nutzt die JSON-Namen als Feldnamen.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterValidation("shopStatus", shop_dto.IsValidShopStatus)
	validate.RegisterValidation("productStatus", product_dto.IsValidProductStatus)
	validate.RegisterValidation("orderStatus", order_dto.IsValidOrderStatus)
	validate.RegisterValidation("role", user_dto.IsValidRole)
	return validate
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, ok := c.Locals("lang").(string)
	if !ok || lang == "" {
		return internal_i18n.DefaultLang
	}
	return lang
}

// GetParamID liest einen Pfadparameter, der eine positive Ganzzahl sein muss.
func GetParamID(c *fiber.Ctx, name string) (int64, *app_errors.AppError) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		appErr := app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_id", err)
		appErr.Detail = "Invalid " + name + ": " + raw
		return 0, appErr
	}
	return id, nil
}

// GetPagination liest page/size (Standard 0/20) und die wiederholten sort-Parameter.
func GetPagination(c *fiber.Ctx) (dtos.Pagination, *app_errors.AppError) {
	p := dtos.Pagination{Page: dtos.DefaultPage, Size: dtos.DefaultSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return p, invalidPage(err, "page", raw)
		}
		p.Page = page
	}

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return p, invalidPage(err, "size", raw)
		}
		p.Size = min(size, dtos.MaxSize)
	}

	for _, s := range c.Context().QueryArgs().PeekMulti("sort") {
		if v := strings.TrimSpace(string(s)); v != "" {
			p.Sort = append(p.Sort, v)
		}
	}

	return p, nil
}

func invalidPage(err error, name, raw string) *app_errors.AppError {
	appErr := app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_page", err)
	appErr.Detail = "Invalid " + name + ": " + raw
	return appErr
}

// ParseBody parst den JSON-Body in dst und validiert ihn.
func ParseBody(c *fiber.Ctx, v *validator.Validate, dst any) *app_errors.AppError {
	if len(c.Body()) == 0 {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", nil)
	}
	if err := c.BodyParser(dst); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}
	if err := v.Struct(dst); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}
