package user_case

import (
	user_dto "github.com/Warzoness/foodshare-manager/internal/dtos/user-dto"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
)

type UserServiceContract interface {
	ListUsers(filter user_dto.UserListFilter) (*user_dto.UserListResponse, *app_errors.AppError)
}
