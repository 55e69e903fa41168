package user_dto

import (
	"github.com/Warzoness/foodshare-manager/internal/dtos"
	"github.com/Warzoness/foodshare-manager/internal/entity"
)

type UserListResponse = dtos.Page[entity.User]
