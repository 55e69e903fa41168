package app_errors

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func ParseValidationError(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	var out []FieldError
	for _, fe := range ve {
		msgKey, params := validationMessageKey(fe)

		out = append(out, FieldError{
			Field:      lowerCamel(fe.Field()),
			Reason:     fe.Tag(),
			MessageKey: msgKey,
			Params:     params,
		})
	}

	return out
}

// lowerCamel wandelt einen Go-Feldnamen in den JSON-Namen um (NewPassword -> newPassword).
func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return strings.ReplaceAll(string(runes), " ", "_")
}

func validationMessageKey(fe validator.FieldError) (string, map[string]interface{}) {
	switch fe.Tag() {
	case "required":
		return "validation.required", nil
	case "min":
		return "validation.min", map[string]interface{}{
			"min": fe.Param(),
		}
	case "max":
		return "validation.max", map[string]interface{}{
			"max": fe.Param(),
		}
	case "gt":
		return "validation.gt", map[string]interface{}{
			"gt": fe.Param(),
		}
	case "email":
		return "validation.email", nil
	case "eqfield", "nefield":
		return "validation." + fe.Tag(), map[string]interface{}{
			"other": lowerCamel(fe.Param()),
		}
	case "datetime":
		return "validation.datetime", map[string]interface{}{
			"layout": fe.Param(),
		}
	case "shopStatus":
		return "validation.shop_status", nil
	case "productStatus":
		return "validation.product_status", nil
	case "orderStatus":
		return "validation.order_status", nil
	case "role":
		return "validation.role", nil
	default:
		return "validation.invalid", nil
	}
}
