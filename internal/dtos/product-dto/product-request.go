package product_dto

import (
	"github.com/Warzoness/foodshare-manager/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateProductRequest struct {
	ShopID      int64   `json:"shopId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CategoryID  int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Status      string  `json:"status,omitempty" validate:"omitempty,productStatus"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CategoryID  int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Status      string  `json:"status,omitempty" validate:"omitempty,productStatus"`
}

func IsValidProductStatus(fl validator.FieldLevel) bool {
	return entity.ProductStatus(fl.Field().String()).IsValid()
}
