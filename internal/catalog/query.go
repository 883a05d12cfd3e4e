package catalog

import (
	"sort"
	"strings"

	"dairydelight/internal/domain"
)

// Sort orders for product listings.
type Sort string

const (
	SortDefault   Sort = "default" // insertion order
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
)

// ParseSort maps a query parameter to a known sort order, falling back to
// insertion order for anything unrecognized.
func ParseSort(v string) Sort {
	switch Sort(v) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return Sort(v)
	default:
		return SortDefault
	}
}

// Query describes a composed product listing: category filter, free-text
// search, discounted-only toggle and sort order.
type Query struct {
	Category       string
	Search         string
	DiscountedOnly bool
	Sort           Sort
}

// Find runs the query. Category matching is exact and case-sensitive (with
// the "all" sentinel); search is a case-insensitive substring match over
// name, description and category; price sorts use the effective unit price.
func (s *Store) Find(q Query) []domain.Product {
	cat := q.Category
	if cat == "" {
		cat = AllCategories
	}
	out := s.ListByCategory(cat)

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered := out[:0]
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if q.DiscountedOnly {
		filtered := out[:0]
		for _, p := range out {
			if p.Discounted() {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EffectivePrice() < out[j].EffectivePrice() })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EffectivePrice() > out[j].EffectivePrice() })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	}
	return out
}
