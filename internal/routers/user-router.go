package routers

import (
	user_dto "github.com/Warzoness/foodshare-manager/internal/dtos/user-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	user_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/user"
	user_case "github.com/Warzoness/foodshare-manager/internal/use-cases/user-case"
	"github.com/gofiber/fiber/v2"
)

// UserRouter: die Liste kommt aus dem eingebetteten Datensatz, alles andere ist noch Stub.
func UserRouter(api fiber.Router, p *proxy_handlers.Proxy, users user_case.UserServiceContract) {
	r := api.Group("/users")

	r.Get("/", p.StaticMockData("response.success_list_users", user_handlers.NewUserDataset(users)))
	r.Get("/:id", p.NotImplemented("", proxy_handlers.RequireID("id")))
	r.Post("/", p.NotImplemented("", p.RequireBody(func() any { return &user_dto.CreateUserRequest{} })))
	r.Put("/:id", p.NotImplemented("",
		proxy_handlers.RequireID("id"),
		p.RequireBody(func() any { return &user_dto.UpdateUserRequest{} }),
	))
	r.Delete("/:id", p.NotImplemented("", proxy_handlers.RequireID("id")))
}
