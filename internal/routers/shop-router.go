package routers

import (
	shop_dto "github.com/Warzoness/foodshare-manager/internal/dtos/shop-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/gofiber/fiber/v2"
)

var shopQuery = []string{"status", "search", "keyword"}

func ShopRouter(api fiber.Router, p *proxy_handlers.Proxy) {
	r := api.Group("/shops")

	r.Get("/", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/shops",
		Query:        shopQuery,
		Paginated:    true,
	}))
	r.Get("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/shops/:id",
		IDParam:      "id",
		NotFound:     true,
	}))
	r.Post("/", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/shops",
		Body:         func() any { return &shop_dto.CreateShopRequest{} },
	}))
	r.Put("/:id/status", p.NotImplemented("",
		proxy_handlers.RequireID("id"),
		p.RequireBody(func() any { return &shop_dto.UpdateShopStatusRequest{} }),
	))
	r.Put("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/shops/:id",
		IDParam:      "id",
		NotFound:     true,
		Body:         func() any { return &shop_dto.UpdateShopRequest{} },
	}))
	r.Delete("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/shops/:id",
		IDParam:      "id",
		NotFound:     true,
	}))
}
