package order_dto

import (
	"github.com/Warzoness/foodshare-manager/internal/entity"
	"github.com/go-playground/validator/v10"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,orderStatus"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func IsValidOrderStatus(fl validator.FieldLevel) bool {
	return entity.OrderStatus(fl.Field().String()).IsValid()
}
