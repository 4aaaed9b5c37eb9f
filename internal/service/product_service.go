package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/stockboard/stockboard/internal/apperrors"
	"github.com/stockboard/stockboard/internal/id"
	"github.com/stockboard/stockboard/internal/models"
	"github.com/stockboard/stockboard/internal/pipeline"
	"github.com/stockboard/stockboard/internal/repository"
	"github.com/stockboard/stockboard/internal/selection"
)

// DefaultPageSize is used when no page size option is given.
const DefaultPageSize = 10

type ProductRepository interface {
	Create(product *models.Product) *models.Product
	GetByID(id string) (*models.Product, error)
	Exists(id string) bool
	Update(product *models.Product) (*models.Product, error)
	Delete(ids []string) int
	All() []*models.Product
	Replace(products []*models.Product)
}

// ProductStore owns the product collection of one dashboard session
// together with its filter, sort, pagination and selection state. Every
// view is computed from the current state when read.
//
// A ProductStore is not safe for concurrent use.
type ProductStore struct {
	repo     ProductRepository
	ids      *id.Generator
	notifier Notifier
	now      func() time.Time

	filters    models.FilterState
	sort       models.SortState
	pagination models.PaginationState
	selected   selection.Set
}

type Option func(*ProductStore)

func WithNotifier(n Notifier) Option {
	return func(s *ProductStore) { s.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *ProductStore) { s.now = now }
}

func WithIDGenerator(g *id.Generator) Option {
	return func(s *ProductStore) { s.ids = g }
}

func WithPageSize(size int) Option {
	return func(s *ProductStore) {
		if size > 0 {
			s.pagination.PageSize = size
		}
	}
}

func NewProductStore(repo ProductRepository, opts ...Option) *ProductStore {
	s := &ProductStore{
		repo:       repo,
		ids:        id.NewGenerator(id.ProductPrefix),
		notifier:   NewLogNotifier(nil),
		now:        func() time.Time { return time.Now().UTC() },
		sort:       models.DefaultSort(),
		pagination: models.PaginationState{Page: 1, PageSize: DefaultPageSize},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids.Reserve(ids(repo.All())...)
	s.syncPagination()
	return s
}

// Seed replaces the collection with the initial catalog from a data
// provider. Products without an id get one; missing timestamps default to
// now. Duplicate ids or invalid records reject the whole batch.
func (s *ProductStore) Seed(products []*models.Product) error {
	seen := make(map[string]struct{}, len(products))
	loaded := make([]*models.Product, len(products))
	now := s.now()

	for i, p := range products {
		if p == nil {
			return fmt.Errorf("seed product %d: %w", i, apperrors.NewValidationError("", "product is empty"))
		}
		if err := validateForm(p.FormData()); err != nil {
			return fmt.Errorf("seed product %d: %w", i, err)
		}
		c := p.Clone()
		if c.ID != "" {
			if _, dup := seen[c.ID]; dup {
				return apperrors.NewConflictError("product", fmt.Sprintf("duplicate id %s", c.ID))
			}
			seen[c.ID] = struct{}{}
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		loaded[i] = c
	}

	for _, c := range loaded {
		s.ids.Reserve(c.ID)
	}
	for _, c := range loaded {
		if c.ID == "" {
			c.ID = s.ids.New()
		}
	}

	s.repo.Replace(loaded)
	s.selected = selection.Set{}
	s.pagination.Page = 1
	s.syncPagination()
	return nil
}

// ListView returns the current page of the filtered, sorted collection.
func (s *ProductStore) ListView() models.ListView {
	filtered := pipeline.Filter(s.repo.All(), s.filters)
	page := s.page(filtered)

	items := make([]*models.Product, len(page))
	for i, p := range page {
		items[i] = p.Clone()
	}

	pagination := s.pagination
	pagination.TotalItems = len(filtered)
	return models.ListView{
		Items:      items,
		TotalItems: len(filtered),
		Pagination: pagination,
	}
}

// CategoryAggregate counts products per category across the whole
// collection, ignoring filters.
func (s *ProductStore) CategoryAggregate() []models.CategoryCount {
	return pipeline.AggregateByCategory(s.repo.All())
}

func (s *ProductStore) GetProduct(productID string) (*models.Product, error) {
	p, err := s.repo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductStore) Filters() models.FilterState {
	f := s.filters
	f.Categories = slices.Clone(s.filters.Categories)
	return f
}

func (s *ProductStore) Sort() models.SortState {
	return s.sort
}

func (s *ProductStore) Pagination() models.PaginationState {
	p := s.pagination
	p.TotalItems = len(pipeline.Filter(s.repo.All(), s.filters))
	return p
}

// SetFilters replaces the filter state and returns to the first page.
func (s *ProductStore) SetFilters(f models.FilterState) error {
	if err := validateFilters(f); err != nil {
		return err
	}
	f.Categories = slices.Clone(f.Categories)
	s.filters = f
	s.pagination.Page = 1
	s.syncPagination()
	return nil
}

// SetSort replaces the sort state. An empty direction means ascending.
func (s *ProductStore) SetSort(st models.SortState) error {
	if st.Direction == "" {
		st.Direction = models.SortAsc
	}
	if err := validateSort(st); err != nil {
		return err
	}
	s.sort = st
	return nil
}

// SetPagination moves to p.Page with p.PageSize. p.TotalItems is ignored.
func (s *ProductStore) SetPagination(p models.PaginationState) error {
	if err := validatePagination(p); err != nil {
		return err
	}
	s.pagination.Page = p.Page
	s.pagination.PageSize = p.PageSize
	return nil
}

// AddProduct validates data and appends it as a new product with a fresh
// id. Nothing changes when validation fails.
func (s *ProductStore) AddProduct(ctx context.Context, data models.ProductFormData) (*models.Product, error) {
	if err := validateForm(data); err != nil {
		s.notifier.Failure(ctx, "Please fix the form errors", err)
		return nil, err
	}

	now := s.now()
	created := s.repo.Create(&models.Product{
		ID:          s.ids.New(),
		Name:        data.Name,
		Category:    data.Category,
		Price:       data.Price,
		Stock:       data.Stock,
		Description: cloneString(data.Description),
		Image:       cloneString(data.Image),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	s.syncPagination()

	s.notifier.Success(ctx, "Product added successfully")
	return created, nil
}

// UpdateProduct merges patch into the product with the given id. The id
// and creation time never change; UpdatedAt is refreshed.
func (s *ProductStore) UpdateProduct(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error) {
	current, err := s.GetProduct(productID)
	if err != nil {
		s.notifier.Failure(ctx, "Product not found", err)
		return nil, err
	}

	merged := patch.Apply(current.FormData())
	if err := validateForm(merged); err != nil {
		s.notifier.Failure(ctx, "Please fix the form errors", err)
		return nil, err
	}

	current.Name = merged.Name
	current.Category = merged.Category
	current.Price = merged.Price
	current.Stock = merged.Stock
	current.Description = cloneString(merged.Description)
	current.Image = cloneString(merged.Image)
	current.UpdatedAt = s.now()

	updated, err := s.repo.Update(current)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", productID, err)
	}
	s.syncPagination()

	s.notifier.Success(ctx, "Product updated successfully")
	return updated, nil
}

// DeleteProducts removes every product whose id is listed and drops those
// ids from the selection. Unknown ids are ignored. It returns how many
// products were removed.
func (s *ProductStore) DeleteProducts(ctx context.Context, productIDs []string) int {
	removed := s.repo.Delete(productIDs)
	s.selected.Remove(productIDs...)
	s.syncPagination()

	switch {
	case removed == 1:
		s.notifier.Success(ctx, "Product deleted successfully")
	case removed > 1:
		s.notifier.Success(ctx, fmt.Sprintf("%d products deleted successfully", removed))
	}
	return removed
}

func (s *ProductStore) ToggleSelection(productID string) {
	s.selected.Toggle(productID)
}

// ToggleAllVisibleSelection deselects everything when the selection is
// exactly the visible page, otherwise selects exactly the visible page.
func (s *ProductStore) ToggleAllVisibleSelection() {
	visible := s.page(pipeline.Filter(s.repo.All(), s.filters))
	s.selected.ToggleAll(ids(visible))
}

func (s *ProductStore) SelectedIDs() []string {
	return s.selected.IDs()
}

func (s *ProductStore) IsSelected(productID string) bool {
	return s.selected.Contains(productID)
}

func (s *ProductStore) page(filtered []*models.Product) []*models.Product {
	sorted := pipeline.Sort(filtered, s.sort)
	return pipeline.Paginate(sorted, s.pagination.Page, s.pagination.PageSize)
}

// syncPagination records the filtered count and returns to page 1 when it
// changed, so the view never strands on a page that no longer exists.
func (s *ProductStore) syncPagination() {
	total := len(pipeline.Filter(s.repo.All(), s.filters))
	if total != s.pagination.TotalItems {
		s.pagination.Page = 1
		s.pagination.TotalItems = total
	}
}

func ids(products []*models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
