package routers

import (
	shop_dto "github.com/Warzoness/foodshare-manager/internal/dtos/shop-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/gofiber/fiber/v2"
)

// AdminRouter spiegelt die Admin-Sicht des Backends. Berechtigungen prüft das Backend.
func AdminRouter(api fiber.Router, p *proxy_handlers.Proxy) {
	r := api.Group("/admin")

	r.Get("/dashboard", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "dashboard",
		UpstreamPath: "/admin/dashboard",
		Query:        []string{"fromDate", "toDate"},
	}))
	r.Get("/shops", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/admin/shops",
		Query:        shopQuery,
		Paginated:    true,
	}))
	r.Get("/shops/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/admin/shops/:id",
		IDParam:      "id",
		NotFound:     true,
	}))
	r.Put("/shops/:id/status", p.NotImplemented("",
		proxy_handlers.RequireID("id"),
		p.RequireBody(func() any { return &shop_dto.UpdateShopStatusRequest{} }),
	))
	r.Get("/orders", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/admin/orders",
		Query:        orderQuery,
		Paginated:    true,
	}))
	r.Get("/products", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/admin/products",
		Query:        productQuery,
		Paginated:    true,
	}))
}
