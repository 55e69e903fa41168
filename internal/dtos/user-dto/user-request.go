package user_dto

import (
	"github.com/Warzoness/foodshare-manager/internal/entity"
	"github.com/go-playground/validator/v10"
)

// UserListFilter sind die Filter der (Mock-)Benutzerliste.
type UserListFilter struct {
	Role   string
	Status string
	Search string
	Page   int
	Size   int
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,role"`
}

type UpdateUserRequest struct {
	Name   string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone  string `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Role   string `json:"role,omitempty" validate:"omitempty,role"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE BLOCKED"`
}

func IsValidRole(fl validator.FieldLevel) bool {
	_, ok := entity.ParseUserRole(fl.Field().String())
	return ok
}
