package pipeline

import "github.com/stockboard/stockboard/internal/models"

// Paginate returns the 1-based page of size pageSize, clipped to the
// bounds of products. Pages past the end are empty.
func Paginate(products []*models.Product, page, pageSize int) []*models.Product {
	if page < 1 || pageSize < 1 {
		return []*models.Product{}
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return []*models.Product{}
	}
	end := min(start+pageSize, len(products))
	return products[start:end]
}

// PageCount is the number of pages needed to show total items.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
