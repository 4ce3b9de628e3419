package catalog

import (
	"sort"

	"mix-store/internal/model"
)

// AllCategories is the sentinel category that disables filtering.
const AllCategories = "All"

// FeaturedLimit caps the home page's featured listing.
const FeaturedLimit = 3

// SortOrder is the price ordering applied to a product listing.
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts a query value to a SortOrder. An empty value means
// SortNone.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(value) {
	case "", SortNone:
		return SortNone, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", model.ErrInvalidSort
	}
}

// Query describes a shop listing: a category filter followed by a price sort.
type Query struct {
	Category string
	Sort     SortOrder
}

// Categories returns the "All" sentinel followed by each distinct category in
// the order it first appears in the catalogue.
func Categories(products []model.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// Filter returns the products whose category matches exactly. "All" and the
// empty string return every product.
func Filter(products []model.Product, category string) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category == "" || category == AllCategories || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortByPrice returns a copy of products ordered by price. Ties keep their
// catalogue order and SortNone leaves the order untouched.
func SortByPrice(products []model.Product, order SortOrder) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch order {
	case SortAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}

	return sorted
}

// Featured returns the first FeaturedLimit featured products in catalogue
// order.
func Featured(products []model.Product) []model.Product {
	featured := make([]model.Product, 0, FeaturedLimit)
	for _, p := range products {
		if len(featured) == FeaturedLimit {
			break
		}
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Apply filters and then sorts products according to q.
func Apply(products []model.Product, q Query) []model.Product {
	return SortByPrice(Filter(products, q.Category), q.Sort)
}
