package api

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the request body for creating a product.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"max=255"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
	Image       *string         `json:"image" validate:"omitempty,url"`
}

// UpdateProductRequest represents the request body for updating a product.
// Omitted fields keep their current value.
// @Description Request payload for updating a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Image       *string          `json:"image" validate:"omitempty,url"`
}

// DeleteProductsRequest lists the products to remove.
// @Description Request payload for bulk deletion
type DeleteProductsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// FiltersRequest replaces the active filters.
type FiltersRequest struct {
	Categories  []string `json:"categories"`
	OnlyInStock bool     `json:"only_in_stock"`
	SearchQuery string   `json:"search_query" validate:"max=200"`
}

// SortRequest replaces the active sort order.
type SortRequest struct {
	Field     string `json:"field" validate:"required"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// PaginationRequest moves the visible window.
type PaginationRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=100"`
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Selected    bool            `json:"selected"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// DeleteProductsResponse reports how many products were removed.
type DeleteProductsResponse struct {
	Deleted int `json:"deleted"`
}

// SelectionResponse lists the selected product ids.
type SelectionResponse struct {
	IDs []string `json:"ids"`
}
