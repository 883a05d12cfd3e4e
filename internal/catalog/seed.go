package catalog

import "dairydelight/internal/domain"

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// SeedProducts is the demo catalog served when no upstream feed is reachable.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                 "1",
			Name:               "Organic Whole Milk",
			Description:        "Fresh organic whole milk, rich in nutrients.",
			Price:              4.99,
			DiscountPrice:      fp(3.99),
			DiscountPercentage: ip(20),
			Image:              "https://images.unsplash.com/photo-1550630997-aea8d3d982ed?q=80&w=1964&auto=format&fit=crop",
			Category:           "dairy",
			Featured:           true,
		},
		{
			ID:          "2",
			Name:        "Greek Yogurt",
			Description: "Creamy Greek yogurt, perfect for breakfast.",
			Price:       6.99,
			Image:       "https://images.unsplash.com/photo-1593198232414-72431a1cc506?q=80&w=2070&auto=format&fit=crop",
			Category:    "dairy",
		},
		{
			ID:                 "3",
			Name:               "Unsalted Butter",
			Description:        "Smooth and rich unsalted butter for baking and cooking.",
			Price:              5.49,
			DiscountPrice:      fp(4.49),
			DiscountPercentage: ip(18),
			Image:              "/UnsaltedButter.jpg",
			Category:           "butter",
			Featured:           true,
		},
		{
			ID:          "4",
			Name:        "Cheddar Cheese",
			Description: "Sharp and flavorful cheddar cheese.",
			Price:       4.29,
			Image:       "https://images.unsplash.com/photo-1607127368565-0fc09ac36028?q=80&w=2070&auto=format&fit=crop",
			Category:    "cheese",
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "Almond Milk",
			Description: "Plant-based almond milk, perfect for lactose intolerance.",
			Price:       3.99,
			Image:       "https://images.unsplash.com/photo-1626196340104-2d6769a08761?q=80&w=1974&auto=format&fit=crop",
			Category:    "dairy-alternative",
		},
		{
			ID:          "6",
			Name:        "Mozzarella Cheese",
			Description: "Soft and creamy mozzarella cheese.",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1683314573422-649a3c6ad784?q=80&w=2070&auto=format&fit=crop",
			Category:    "cheese",
		},
		{
			ID:          "7",
			Name:        "Sour Cream",
			Description: "Rich and tangy sour cream for dips and toppings.",
			Price:       1.29,
			Image:       "https://images.unsplash.com/photo-1686998423980-ab223d183055?q=80&w=2074&auto=format&fit=crop",
			Category:    "dairy",
		},
		{
			ID:          "8",
			Name:        "Salted Butter",
			Description: "Creamy salted butter for spreading and cooking.",
			Price:       3.99,
			Image:       "https://images.unsplash.com/photo-1727715447752-9ef7ca9a778a?q=80&w=2070&auto=format&fit=crop",
			Category:    "butter",
		},
	}
}

// Category is an option for the category filter dropdowns.
type Category struct {
	Value string
	Label string
}

// Categories lists the admin form's category options.
func Categories() []Category {
	return []Category{
		{Value: "milk", Label: "Milk"},
		{Value: "cheese", Label: "Cheese"},
		{Value: "yogurt", Label: "Yogurt"},
		{Value: "butter", Label: "Butter"},
		{Value: "cream", Label: "Cream"},
	}
}
