package handlers

import (
	"dairydelight/internal/catalog"
	applog "dairydelight/internal/log"
	"dairydelight/internal/services"
	"dairydelight/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the mock product CRUD panel. The demo models no
// authentication; anyone may reach these routes.
type AdminHandler struct {
	Catalog *services.CatalogService
}

// GET /admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	return render(c, "admin_products", fiber.Map{
		"Products":   h.Catalog.Products(catalog.Query{}),
		"Categories": h.Catalog.Categories(),
	})
}

// parseProductForm maps the admin form to a ProductInput. Field-level parse
// failures surface as the same soft rejections the service would emit.
func parseProductForm(c *fiber.Ctx) (services.ProductInput, error) {
	var in services.ProductInput
	in.Name, _ = validate.Required(c.FormValue("name"), 100)
	in.Description, _ = validate.Required(c.FormValue("description"), 500)
	in.Category, _ = validate.Required(c.FormValue("category"), 50)
	in.Image = c.FormValue("image")
	in.ModelURL = c.FormValue("modelUrl")
	in.Featured = c.FormValue("featured") == "on"

	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return in, &services.ValidationError{Message: "Price must be greater than 0"}
	}
	in.Price = price

	dp, ok := validate.OptionalPrice(c.FormValue("discountPrice"))
	if !ok {
		return in, &services.ValidationError{Message: "Discount price must be less than regular price"}
	}
	in.DiscountPrice = dp

	pct, ok := validate.OptionalPercent(c.FormValue("discountPercentage"))
	if !ok {
		return in, &services.ValidationError{Message: "Discount percentage must be between 0 and 100"}
	}
	in.DiscountPercentage = pct

	return in, nil
}

// POST /admin/products
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	in, err := parseProductForm(c)
	if err == nil {
		_, err = h.Catalog.Create(in)
	}
	if err != nil {
		if services.IsValidation(err) {
			applog.Security(c, "admin.products.create.reject", map[string]any{"reason": err.Error()})
			setFlash(c, []string{err.Error()})
			return c.Redirect("/admin/products")
		}
		applog.Error(c, "admin.products.create.fail", err, nil)
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"name": in.Name})
	setFlash(c, []string{in.Name + " has been added"})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	in, err := parseProductForm(c)
	if err == nil {
		_, err = h.Catalog.Update(id, in)
	}
	if err != nil {
		if services.IsValidation(err) {
			applog.Security(c, "admin.products.update.reject", map[string]any{"product": id, "reason": err.Error()})
			setFlash(c, []string{err.Error()})
			return c.Redirect("/admin/products")
		}
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product": id})
	setFlash(c, []string{in.Name + " has been updated"})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	name := id
	if p, err := h.Catalog.Product(id); err == nil {
		name = p.Name
	}
	h.Catalog.Delete(id)
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	setFlash(c, []string{name + " has been deleted"})
	return c.Redirect("/admin/products")
}
