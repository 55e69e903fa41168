package routers

import (
	product_dto "github.com/Warzoness/foodshare-manager/internal/dtos/product-dto"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/gofiber/fiber/v2"
)

var productQuery = []string{"status", "search", "keyword", "shopId", "categoryId"}

func ProductRouter(api fiber.Router, p *proxy_handlers.Proxy) {
	r := api.Group("/products")

	r.Get("/", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/products",
		Query:        productQuery,
		Paginated:    true,
	}))
	r.Get("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/products/:id",
		IDParam:      "id",
		NotFound:     true,
	}))
	r.Post("/", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/products",
		Body:         func() any { return &product_dto.CreateProductRequest{} },
	}))
	r.Put("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/products/:id",
		IDParam:      "id",
		NotFound:     true,
		Body:         func() any { return &product_dto.UpdateProductRequest{} },
	}))
	r.Delete("/:id", p.ForwardToBackend(proxy_handlers.Route{
		Resource:     "product",
		UpstreamPath: "/products/:id",
		IDParam:      "id",
		NotFound:     true,
	}))
}
