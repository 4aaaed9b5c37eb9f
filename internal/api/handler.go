package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/stockboard/stockboard/internal/models"
	"github.com/stockboard/stockboard/internal/pipeline"
)

// ProductStore defines only the methods the API layer needs from the store.
type ProductStore interface {
	ListView() models.ListView
	CategoryAggregate() []models.CategoryCount
	GetProduct(productID string) (*models.Product, error)
	Filters() models.FilterState
	Sort() models.SortState
	Pagination() models.PaginationState
	SetFilters(f models.FilterState) error
	SetSort(s models.SortState) error
	SetPagination(p models.PaginationState) error
	AddProduct(ctx context.Context, data models.ProductFormData) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error)
	DeleteProducts(ctx context.Context, productIDs []string) int
	ToggleSelection(productID string)
	ToggleAllVisibleSelection()
	SelectedIDs() []string
	IsSelected(productID string) bool
}

// Handler serves one store. The store is single-writer, so every call
// into it holds mu.
type Handler struct {
	mu    sync.Mutex
	store ProductStore
}

func NewHandler(store ProductStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view := h.store.ListView()
	responses := make([]ProductResponse, len(view.Items))
	for i, p := range view.Items {
		responses[i] = h.convertToProductResponse(p)
	}
	h.mu.Unlock()

	p := view.Pagination
	List(w, responses, p.Page, p.PageSize, view.TotalItems, pipeline.PageCount(view.TotalItems, p.PageSize))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()

	product, err := h.store.GetProduct(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, h.convertToProductResponse(product))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
	})

	data := models.ProductFormData{
		Name:        req.Name,
		Category:    models.Category(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	product, err := h.store.AddProduct(r.Context(), data)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, h.convertToProductResponse(product))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})

	patch := models.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Category != nil {
		c := models.Category(*req.Category)
		patch.Category = &c
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	product, err := h.store.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, h.convertToProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()

	h.store.DeleteProducts(r.Context(), []string{id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteProducts(w http.ResponseWriter, r *http.Request) {
	var req DeleteProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	deleted := h.store.DeleteProducts(r.Context(), req.IDs)
	canonlog.AddRequestFields(r.Context(), map[string]any{
		"deleted_count": deleted,
	})

	Success(w, DeleteProductsResponse{Deleted: deleted})
}

func (h *Handler) GetFilters(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	Success(w, h.store.Filters())
}

func (h *Handler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	filters := models.FilterState{
		Categories:  make([]models.Category, len(req.Categories)),
		OnlyInStock: req.OnlyInStock,
		SearchQuery: req.SearchQuery,
	}
	for i, c := range req.Categories {
		filters.Categories[i] = models.Category(c)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.SetFilters(filters); err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, h.store.Filters())
}

func (h *Handler) GetSort(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	Success(w, h.store.Sort())
}

func (h *Handler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.SetSort(models.SortState{
		Field:     models.SortField(req.Field),
		Direction: models.SortDirection(req.Direction),
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, h.store.Sort())
}

func (h *Handler) GetPagination(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	Success(w, h.store.Pagination())
}

func (h *Handler) SetPagination(w http.ResponseWriter, r *http.Request) {
	var req PaginationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.SetPagination(models.PaginationState{Page: req.Page, PageSize: req.PageSize}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, h.store.Pagination())
}

func (h *Handler) CategoryStats(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	Success(w, h.store.CategoryAggregate())
}

func (h *Handler) GetSelection(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	Success(w, SelectionResponse{IDs: h.store.SelectedIDs()})
}

func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()

	h.store.ToggleSelection(id)
	Success(w, SelectionResponse{IDs: h.store.SelectedIDs()})
}

func (h *Handler) ToggleVisibleSelection(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.store.ToggleAllVisibleSelection()
	Success(w, SelectionResponse{IDs: h.store.SelectedIDs()})
}

// convertToProductResponse must be called with h.mu held.
func (h *Handler) convertToProductResponse(product *models.Product) ProductResponse {
	var description, image string
	if product.Description != nil {
		description = *product.Description
	}
	if product.Image != nil {
		image = *product.Image
	}

	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    string(product.Category),
		Price:       product.Price,
		Stock:       product.Stock,
		Description: description,
		Image:       image,
		Selected:    h.store.IsSelected(product.ID),
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
}
