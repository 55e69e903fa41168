package shop_dto

import (
	"github.com/Warzoness/foodshare-manager/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateShopRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Address     string  `json:"address" validate:"required"`
	Phone       string  `json:"phone" validate:"required,min=9,max=15"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude    float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type UpdateShopRequest struct {
	Name        string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude    float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type UpdateShopStatusRequest struct {
	Status string `json:"status" validate:"required,shopStatus"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func IsValidShopStatus(fl validator.FieldLevel) bool {
	return entity.ShopStatus(fl.Field().String()).IsValid()
}
