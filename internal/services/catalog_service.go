package services

import (
	"dairydelight/internal/catalog"
	"dairydelight/internal/domain"
)

// ProductInput is the admin form payload for create and update.
type ProductInput struct {
	Name               string
	Description        string
	Category           string
	Price              float64
	DiscountPrice      *float64
	DiscountPercentage *int
	Image              string
	ModelURL           string
	Featured           bool
}

// CatalogService fronts the product store and enforces the admin form rules
// the store itself deliberately does not.
type CatalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Products(q catalog.Query) []domain.Product {
	return s.store.Find(q)
}

func (s *CatalogService) Product(id string) (domain.Product, error) {
	return s.store.Get(id)
}

func (s *CatalogService) Featured() []domain.Product {
	return s.store.ListFeatured()
}

func (s *CatalogService) Categories() []catalog.Category {
	return catalog.Categories()
}

func validateInput(in ProductInput) error {
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return &ValidationError{Message: "Please fill all required fields"}
	}
	if in.Price <= 0 {
		return &ValidationError{Message: "Price must be greater than 0"}
	}
	if in.DiscountPrice != nil && *in.DiscountPrice >= in.Price {
		return &ValidationError{Message: "Discount price must be less than regular price"}
	}
	if in.DiscountPercentage != nil && (*in.DiscountPercentage < 0 || *in.DiscountPercentage > 100) {
		return &ValidationError{Message: "Discount percentage must be between 0 and 100"}
	}
	return nil
}

func toProduct(in ProductInput) domain.Product {
	return domain.Product{
		Name:               in.Name,
		Description:        in.Description,
		Category:           in.Category,
		Price:              in.Price,
		DiscountPrice:      in.DiscountPrice,
		DiscountPercentage: in.DiscountPercentage,
		Image:              in.Image,
		ModelURL:           in.ModelURL,
		Featured:           in.Featured,
	}
}

// Create validates and stores a new product, assigning its id.
func (s *CatalogService) Create(in ProductInput) (domain.Product, error) {
	if err := validateInput(in); err != nil {
		return domain.Product{}, err
	}
	return s.store.Add(toProduct(in)), nil
}

// Update validates and replaces the product with the given id.
func (s *CatalogService) Update(id string, in ProductInput) (domain.Product, error) {
	if err := validateInput(in); err != nil {
		return domain.Product{}, err
	}
	p := toProduct(in)
	p.ID = id
	if err := s.store.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Delete removes the product; unknown ids are a no-op. Existing cart line
// items keep their snapshot of the product.
func (s *CatalogService) Delete(id string) {
	s.store.Remove(id)
}
