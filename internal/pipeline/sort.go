package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/stockboard/stockboard/internal/models"
)

// Sort returns a stably sorted copy of products. Names and categories
// compare by byte order; equal keys keep their input order.
func Sort(products []*models.Product, s models.SortState) []*models.Product {
	sorted := slices.Clone(products)
	compare := comparator(s.Field)
	if s.Direction == models.SortDesc {
		asc := compare
		compare = func(a, b *models.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(sorted, compare)
	return sorted
}

func comparator(field models.SortField) func(a, b *models.Product) int {
	switch field {
	case models.SortByCategory:
		return func(a, b *models.Product) int { return strings.Compare(string(a.Category), string(b.Category)) }
	case models.SortByPrice:
		return func(a, b *models.Product) int { return a.Price.Cmp(b.Price) }
	case models.SortByStock:
		return func(a, b *models.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	case models.SortByUpdatedAt:
		return func(a, b *models.Product) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	default:
		return func(a, b *models.Product) int { return strings.Compare(a.Name, b.Name) }
	}
}
