package routers

import (
	order_dto "github.com/Warzoness/foodshare-manager/internal/dtos/order-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/gofiber/fiber/v2"
)

var orderQuery = []string{"status", "shopId", "search", "fromDate", "toDate"}

// OrderRouter: 404 des Backends wird bei Bestellungen nicht umgedeutet.
func OrderRouter(api fiber.Router, p *proxy_handlers.Proxy) {
	r := api.Group("/orders")

	r.Get("/", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/orders",
		Query:        orderQuery,
		Paginated:    true,
	}))
	r.Get("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "order",
		UpstreamPath: "/orders/:id",
		IDParam:      "id",
	}))
	r.Put("/:id/status", p.NotImplemented("",
		proxy_handlers.RequireID("id"),
		p.RequireBody(func() any { return &order_dto.UpdateOrderStatusRequest{} }),
	))
}
