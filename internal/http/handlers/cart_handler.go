package handlers

import (
	applog "dairydelight/internal/log"
	"dairydelight/internal/services"
	"dairydelight/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// flush moves pending cart notifications into the flash cookie.
func (h *CartHandler) flush(c *fiber.Ctx, sid string) {
	setFlash(c, h.Cart.Messages(sid))
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	cv := h.Cart.View(c.Context(), sid)
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Catalog.Product(productID)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	h.Cart.Add(c.Context(), sid, p, qty)
	applog.Audit(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	h.flush(c, sid)
	return c.Redirect("/cart")
}

// POST /cart/update
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty, ok := validate.QtyExact(c.FormValue("qty"))
	if !ok {
		return c.Status(400).SendString("invalid qty")
	}
	h.Cart.SetQuantity(c.Context(), sid, productID, qty)
	applog.Audit(c, "cart.update", map[string]any{"product": productID, "qty": qty})
	h.flush(c, sid)
	return c.Redirect("/cart")
}

// POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.Remove(c.Context(), sid, productID)
	applog.Audit(c, "cart.remove", map[string]any{"product": productID})
	h.flush(c, sid)
	return c.Redirect("/cart")
}

// POST /cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Cart.Clear(c.Context(), sid)
	applog.Audit(c, "cart.clear", nil)
	h.flush(c, sid)
	return c.Redirect("/cart")
}

// POST /coupon
func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	code, ok := validate.Coupon(c.FormValue("code"))
	if !ok {
		applog.Security(c, "coupon.validation.fail", map[string]any{"code": c.FormValue("code")})
		setFlash(c, []string{"Invalid coupon code"})
		return c.Redirect("/cart")
	}
	if h.Cart.ApplyCoupon(c.Context(), sid, code) {
		applog.Audit(c, "coupon.apply", map[string]any{"code": code})
	} else {
		applog.Info(c, "coupon.reject", map[string]any{"code": code})
	}
	h.flush(c, sid)
	return c.Redirect("/cart")
}

// POST /coupon/remove
func (h *CartHandler) RemoveCoupon(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Cart.RemoveCoupon(c.Context(), sid)
	applog.Audit(c, "coupon.remove", nil)
	h.flush(c, sid)
	return c.Redirect("/cart")
}
