package domain

// Product is a catalog entry. JSON tags match the persisted snapshot format.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPrice      *float64 `json:"discountPrice,omitempty"`
	DiscountPercentage *int     `json:"discountPercentage,omitempty"`
	Image              string   `json:"image,omitempty"`
	Category           string   `json:"category"`
	Featured           bool     `json:"featured,omitempty"`
	ModelURL           string   `json:"modelUrl,omitempty"` // decorative 3D asset, no pricing effect
}

// EffectivePrice is the unit price used for cart math: the discount price
// when one is set, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Discounted reports whether the product carries any discount marker.
func (p Product) Discounted() bool {
	return p.DiscountPrice != nil || p.DiscountPercentage != nil
}

// LineItem pairs a product snapshot with a quantity. The product is copied at
// add time; later catalog edits or deletes do not reach into the cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line's effective unit price times its quantity.
func (li LineItem) Subtotal() float64 {
	return li.Product.EffectivePrice() * float64(li.Quantity)
}

// Coupon is a named fixed-percentage discount on the cart subtotal.
type Coupon struct {
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discountPercentage"`
}

// Totals are the derived monetary values of a cart.
type Totals struct {
	TotalItems int
	Subtotal   float64
	FinalTotal float64
}
