package repository

import (
	"github.com/stockboard/stockboard/internal/models"
)

// ProductRepository keeps the product collection in memory, in insertion
// order. It is not safe for concurrent use.
type ProductRepository struct {
	products []*models.Product
	index    map[string]int
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: []*models.Product{},
		index:    make(map[string]int),
	}
}

// Create appends product. The caller guarantees its id is unused.
func (r *ProductRepository) Create(product *models.Product) *models.Product {
	stored := product.Clone()
	r.index[stored.ID] = len(r.products)
	r.products = append(r.products, stored)
	return stored.Clone()
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.products[i].Clone(), nil
}

func (r *ProductRepository) Exists(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Update replaces the stored product with the same id.
func (r *ProductRepository) Update(product *models.Product) (*models.Product, error) {
	i, ok := r.index[product.ID]
	if !ok {
		return nil, ErrNotFound
	}
	r.products[i] = product.Clone()
	return product.Clone(), nil
}

// Delete removes every product whose id is in ids and returns the number
// removed. Unknown ids are ignored.
func (r *ProductRepository) Delete(ids []string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.index[id]; ok {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]*models.Product, 0, len(r.products)-len(drop))
	for _, p := range r.products {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	r.products = kept
	r.reindex()
	return len(drop)
}

// All returns the live collection in insertion order. Callers must not
// modify the returned products.
func (r *ProductRepository) All() []*models.Product {
	return r.products
}

func (r *ProductRepository) Len() int {
	return len(r.products)
}

// Replace swaps the whole collection.
func (r *ProductRepository) Replace(products []*models.Product) {
	r.products = make([]*models.Product, len(products))
	for i, p := range products {
		r.products[i] = p.Clone()
	}
	r.reindex()
}

func (r *ProductRepository) reindex() {
	r.index = make(map[string]int, len(r.products))
	for i, p := range r.products {
		r.index[p.ID] = i
	}
}
