package user_handlers

import (
	user_dto "github.com/Warzoness/foodshare-manager/internal/dtos/user-dto"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/handlers"
	user_case "github.com/Warzoness/foodshare-manager/internal/use-cases/user-case"
	"github.com/gofiber/fiber/v2"
)

// UserDataset beantwortet GET /api/users aus dem eingebetteten Datensatz.
type UserDataset struct {
	service user_case.UserServiceContract
}

func NewUserDataset(service user_case.UserServiceContract) *UserDataset {
	return &UserDataset{service: service}
}

// Lookup liest role, status, search, page und size aus der Query.
func (d *UserDataset) Lookup(c *fiber.Ctx) (any, *app_errors.AppError) {
	page, err := handlers.GetPagination(c)
	if err != nil {
		return nil, err
	}

	filter := user_dto.UserListFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page.Page,
		Size:   page.Size,
	}

	resp, err := d.service.ListUsers(filter)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
