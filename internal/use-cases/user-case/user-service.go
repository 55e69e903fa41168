package user_case

import (
	_ "embed"
	"strings"

	"github.com/Warzoness/foodshare-manager/internal/dtos"
	user_dto "github.com/Warzoness/foodshare-manager/internal/dtos/user-dto"
	"github.com/Warzoness/foodshare-manager/internal/entity"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Benutzerverwaltung hat im Backend noch kein Gegenstück, daher der feste Datensatz.
//
//go:embed data/users.json
var seedUsers []byte

type UserService struct {
	users []entity.User
}

// NewUserService lädt den eingebetteten Datensatz. Ein kaputter Datensatz ist ein Build-Fehler.
func NewUserService() UserServiceContract {
	var users []entity.User
	if err := json.Unmarshal(seedUsers, &users); err != nil {
		log.Fatal().Err(err).Msg("Eingebettete Benutzerdaten sind ungültig")
	}
	return &UserService{users: users}
}

// NewUserServiceWith ist für Tests mit eigenem Datensatz.
func NewUserServiceWith(users []entity.User) UserServiceContract {
	return &UserService{users: users}
}

// ListUsers filtert nach Rolle, Status und Suchtext (Name oder E-Mail) und paginiert danach.
// Es findet keine I/O statt.
func (s *UserService) ListUsers(filter user_dto.UserListFilter) (*user_dto.UserListResponse, *app_errors.AppError) {
	if filter.Size <= 0 {
		filter.Size = dtos.DefaultSize
	}
	if filter.Page < 0 {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_page", nil)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		if filter.Role != "" && !strings.EqualFold(string(u.Role), filter.Role) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(string(u.Status), filter.Status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		matched = append(matched, u)
	}

	// Seite ausschneiden, page*size darf nicht überlaufen
	start := len(matched)
	if filter.Page < (len(matched)+filter.Size-1)/filter.Size {
		start = filter.Page * filter.Size
	}
	end := start + min(filter.Size, len(matched)-start)

	page := dtos.NewPage(matched[start:end], filter.Page, filter.Size, int64(len(matched)))
	return &page, nil
}
