package catalog

import (
	"context"

	"dairydelight/internal/domain"
)

// Fetcher retrieves the full product list from an upstream source. The demo
// has no backend, so the default implementation serves the seed data.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// SeedFetcher serves the built-in demo catalog.
type SeedFetcher struct{}

func (SeedFetcher) Fetch(ctx context.Context) ([]domain.Product, error) {
	return SeedProducts(), nil
}

// LoadFrom replaces the store contents with a fresh fetch. On error the
// prior state is kept untouched and the error is returned for logging.
func (s *Store) LoadFrom(ctx context.Context, f Fetcher) error {
	products, err := f.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Replace(products)
	return nil
}
