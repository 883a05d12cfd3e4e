package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"dairydelight/internal/domain"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("catalog: product not found")

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "all"

// Store holds the authoritative in-memory product list in insertion order.
// Reads return copies, never aliases into the backing slice.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewStore(seed []domain.Product) *Store {
	s := &Store{}
	s.Replace(seed)
	return s
}

// Replace swaps the whole product list, keeping the given order. Used by the
// startup fetch.
func (s *Store) Replace(products []domain.Product) {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}

// List returns all products in insertion order.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id or ErrNotFound.
func (s *Store) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// ListByCategory filters by exact, case-sensitive category match. The "all"
// sentinel returns every product.
func (s *Store) ListByCategory(category string) []domain.Product {
	if category == AllCategories {
		return s.List()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListFeatured returns products flagged for promotional display.
func (s *Store) ListFeatured() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Add assigns a fresh id, appends the product and returns the stored copy.
func (s *Store) Add(p domain.Product) domain.Product {
	p.ID = uuid.NewString()
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return p
}

// Update replaces the stored product matching p.ID in place, preserving its
// position. ErrNotFound if no product has that id.
func (s *Store) Update(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the product with the given id. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}
