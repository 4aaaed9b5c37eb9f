package pipeline

import "github.com/stockboard/stockboard/internal/models"

// AggregateByCategory counts products per category over the whole
// collection. Categories with no products are omitted; the rest follow
// models.Categories order.
func AggregateByCategory(products []*models.Product) []models.CategoryCount {
	counts := make(map[models.Category]int)
	for _, p := range products {
		counts[p.Category]++
	}

	stats := make([]models.CategoryCount, 0, len(counts))
	for _, c := range models.Categories {
		if n := counts[c]; n > 0 {
			stats = append(stats, models.CategoryCount{Category: c, Count: n})
		}
	}
	return stats
}
