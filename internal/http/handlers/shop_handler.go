package handlers

import (
	"dairydelight/internal/catalog"
	applog "dairydelight/internal/log"
	"dairydelight/internal/services"
	"dairydelight/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Catalog *services.CatalogService
}

// GET /
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Featured":   h.Catalog.Featured(),
		"Categories": h.Catalog.Categories(),
	})
}

// GET /products?category=&q=&sort=&discounted=
func (h *ShopHandler) Products(c *fiber.Ctx) error {
	q := catalog.Query{
		Category:       c.Query("category", catalog.AllCategories),
		Search:         validate.Q(c.Query("q")),
		DiscountedOnly: c.Query("discounted") == "1",
		Sort:           catalog.ParseSort(c.Query("sort")),
	}
	return render(c, "products", fiber.Map{
		"Products":   h.Catalog.Products(q),
		"Categories": h.Catalog.Categories(),
		"Query":      q,
	})
}

// GET /product/:id
func (h *ShopHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.Product(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
