package routers

import (
	order_dto "github.com/Warzoness/foodshare-manager/internal/dtos/order-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/gofiber/fiber/v2"
)

func SellerRouter(api fiber.Router, p *proxy_handlers.Proxy) {
	r := api.Group("/seller")

	r.Get("/dashboard", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "dashboard",
		UpstreamPath: "/seller/dashboard",
		Query:        []string{"fromDate", "toDate"},
	}))
	r.Get("/shops", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "shop",
		UpstreamPath: "/seller/shops",
		Query:        shopQuery,
		Paginated:    true,
	}))
	r.Get("/products", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/seller/products",
		Query:        productQuery,
		Paginated:    true,
	}))
	r.Get("/orders", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/seller/orders",
		Query:        orderQuery,
		Paginated:    true,
	}))
	r.Get("/orders/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/seller/orders/:id",
		IDParam:      "id",
	}))
	r.Put("/orders/:id/status", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/seller/orders/:id/status",
		IDParam:      "id",
		Body:         func() any { return &order_dto.UpdateOrderStatusRequest{} },
	}))
}
