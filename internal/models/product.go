package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryFurniture   Category = "Furniture"
	CategoryBooks       Category = "Books"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryFurniture,
	CategoryBooks,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description,omitempty"`
	Image       *string         `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductFormData holds the caller-editable fields of a product.
type ProductFormData struct {
	Name        string          `validate:"notblank"`
	Category    Category        `validate:"required,oneof=Electronics Clothing Food Furniture Books"`
	Price       decimal.Decimal `validate:"min=0"`
	Stock       int             `validate:"min=0"`
	Description *string
	Image       *string
}

// ProductPatch is a partial update. Nil fields keep the stored value.
type ProductPatch struct {
	Name        *string
	Category    *Category
	Price       *decimal.Decimal
	Stock       *int
	Description *string
	Image       *string
}

// FormData returns the editable fields of p.
func (p *Product) FormData() ProductFormData {
	return ProductFormData{
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Image:       p.Image,
	}
}

// Apply merges the patch into data field by field; a present patch value wins.
func (p ProductPatch) Apply(data ProductFormData) ProductFormData {
	if p.Name != nil {
		data.Name = *p.Name
	}
	if p.Category != nil {
		data.Category = *p.Category
	}
	if p.Price != nil {
		data.Price = *p.Price
	}
	if p.Stock != nil {
		data.Stock = *p.Stock
	}
	if p.Description != nil {
		data.Description = p.Description
	}
	if p.Image != nil {
		data.Image = p.Image
	}
	return data
}

// Clone returns a copy of p that shares no pointers with it.
func (p *Product) Clone() *Product {
	c := *p
	if p.Description != nil {
		d := *p.Description
		c.Description = &d
	}
	if p.Image != nil {
		i := *p.Image
		c.Image = &i
	}
	return &c
}
