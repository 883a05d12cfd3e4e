package cart

import (
	"fmt"

	"dairydelight/internal/domain"
)

// Notifier receives the user-facing message for each mutation outcome. It is
// a side channel only; correctness never depends on it.
type Notifier func(msg string)

// Engine owns one cart's line items and active coupon and derives all
// monetary totals from them. It is not safe for concurrent use; callers
// serialize access (CartService holds the lock).
type Engine struct {
	items  []domain.LineItem
	coupon *domain.Coupon
	notify Notifier
}

func New(notify Notifier) *Engine {
	if notify == nil {
		notify = func(string) {}
	}
	return &Engine{notify: notify}
}

// Add inserts a new line item for the product or increments the existing
// one. Non-positive quantities are treated as 1.
func (e *Engine) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range e.items {
		if e.items[i].Product.ID == p.ID {
			e.items[i].Quantity += qty
			e.notify(fmt.Sprintf("Added %d more %s to cart", qty, p.Name))
			return
		}
	}
	e.items = append(e.items, domain.LineItem{Product: p, Quantity: qty})
	e.notify(fmt.Sprintf("Added %s to cart", p.Name))
}

// Remove deletes the line item for the product id, if present.
func (e *Engine) Remove(productID string) {
	for i := range e.items {
		if e.items[i].Product.ID == productID {
			e.notify(fmt.Sprintf("Removed %s from cart", e.items[i].Product.Name))
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces an existing line item's quantity. A quantity of zero
// or less removes the item. Unknown product ids are a no-op.
func (e *Engine) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		e.Remove(productID)
		return
	}
	for i := range e.items {
		if e.items[i].Product.ID == productID {
			e.items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart and drops any active coupon.
func (e *Engine) Clear() {
	e.items = nil
	e.coupon = nil
	e.notify("Cart has been cleared")
}

// ApplyCoupon validates the code against the fixed coupon table. On a miss
// the cart is left unchanged and false is returned.
func (e *Engine) ApplyCoupon(code string) bool {
	pct, ok := LookupCoupon(code)
	if !ok {
		e.notify("Invalid coupon code")
		return false
	}
	e.coupon = &domain.Coupon{Code: code, DiscountPercentage: pct}
	e.notify(fmt.Sprintf("Coupon applied: %s (%d%% off)", code, pct))
	return true
}

// RemoveCoupon clears the active coupon, if any.
func (e *Engine) RemoveCoupon() {
	if e.coupon == nil {
		return
	}
	e.notify(fmt.Sprintf("Coupon %s removed", e.coupon.Code))
	e.coupon = nil
}

// Items returns a copy of the line items in insertion order.
func (e *Engine) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Coupon returns the active coupon, if one is set.
func (e *Engine) Coupon() (domain.Coupon, bool) {
	if e.coupon == nil {
		return domain.Coupon{}, false
	}
	return *e.coupon, true
}

// TotalItems sums the quantities across all line items.
func (e *Engine) TotalItems() int {
	n := 0
	for _, li := range e.items {
		n += li.Quantity
	}
	return n
}

// Subtotal sums effective unit price times quantity over all line items.
func (e *Engine) Subtotal() float64 {
	sum := 0.0
	for _, li := range e.items {
		sum += li.Subtotal()
	}
	return sum
}

// FinalTotal applies the coupon percentage to the subtotal. The coupon
// stacks on top of per-product discount prices.
func (e *Engine) FinalTotal() float64 {
	sub := e.Subtotal()
	if e.coupon == nil {
		return sub
	}
	return sub * (1 - float64(e.coupon.DiscountPercentage)/100)
}

// Totals recomputes all derived values from current state.
func (e *Engine) Totals() domain.Totals {
	return domain.Totals{
		TotalItems: e.TotalItems(),
		Subtotal:   e.Subtotal(),
		FinalTotal: e.FinalTotal(),
	}
}

// Restore replaces the engine state from a persisted snapshot. A discount
// percentage of zero means no coupon.
func (e *Engine) Restore(items []domain.LineItem, couponCode string, couponPct int) {
	e.items = items
	if couponCode != "" && couponPct > 0 {
		e.coupon = &domain.Coupon{Code: couponCode, DiscountPercentage: couponPct}
	} else {
		e.coupon = nil
	}
}
