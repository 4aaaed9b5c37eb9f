// Package pipeline holds the pure stages that turn the product collection
// into the dashboard views: filter, sort, paginate and aggregate.
package pipeline

import (
	"slices"
	"strings"

	"github.com/stockboard/stockboard/internal/models"
)

// Filter returns the products that satisfy every active predicate of f,
// in their original order.
func Filter(products []*models.Product, f models.FilterState) []*models.Product {
	query := strings.ToLower(f.SearchQuery)

	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, f, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matchesFilter(p *models.Product, f models.FilterState, query string) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if f.OnlyInStock && p.Stock <= 0 {
		return false
	}
	if query != "" && !matchesSearch(p, query) {
		return false
	}
	return true
}

// query must already be lower-cased.
func matchesSearch(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(p.Category)), query) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query)
}
