package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockboard/stockboard/internal/api"
	"github.com/stockboard/stockboard/internal/apperrors"
	"github.com/stockboard/stockboard/internal/models"
	"github.com/stockboard/stockboard/internal/repository"
	"github.com/stockboard/stockboard/internal/service"
)

type silentNotifier struct{}

func (silentNotifier) Success(context.Context, string)        {}
func (silentNotifier) Failure(context.Context, string, error) {}

func newRouter(t *testing.T, products ...*models.Product) http.Handler {
	t.Helper()
	store := service.NewProductStore(repository.NewProductRepository(), service.WithNotifier(silentNotifier{}))
	if err := store.Seed(products); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return api.NewHandler(store).RoutesWithConfig(api.RouteConfig{
		ReadRPS:        10000,
		WriteRPS:       10000,
		MaxBodyBytes:   1048576,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func catalog() []*models.Product {
	return []*models.Product{
		{ID: "p1", Name: "Laptop", Category: models.CategoryElectronics, Price: decimal.NewFromInt(1200), Stock: 3},
		{ID: "p2", Name: "Jacket", Category: models.CategoryClothing, Price: decimal.NewFromInt(80), Stock: 0},
		{ID: "p3", Name: "Novel", Category: models.CategoryBooks, Price: decimal.NewFromInt(15), Stock: 12},
	}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("expected 200 OK, got %d %q", w.Code, w.Body.String())
	}
}

func TestCreateProduct_Valid(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","category":"Electronics","price":"19.99","stock":5,"description":"Small"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	resp := decode[api.ProductResponse](t, w)
	if resp.ID == "" || resp.Name != "Widget" || resp.Stock != 5 || resp.Description != "Small" {
		t.Errorf("unexpected product: %+v", resp)
	}
	if !resp.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("expected price 19.99, got %s", resp.Price)
	}

	w = do(r, http.MethodGet, "/api/v1/products/"+resp.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("expected created product to be readable, got %d", w.Code)
	}
}

func TestCreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedFields []string
	}{
		{
			name:           "Empty name, negative price and stock",
			body:           `{"name":"","category":"Electronics","price":-1,"stock":-1}`,
			expectedFields: []string{"name", "price", "stock"},
		},
		{
			name:           "Unknown category",
			body:           `{"name":"Kite","category":"Toys","price":5,"stock":1}`,
			expectedFields: []string{"category"},
		},
		{
			name:           "Image is not a URL",
			body:           `{"name":"Kite","category":"Books","price":5,"stock":1,"image":"not a url"}`,
			expectedFields: []string{"image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t)
			w := do(r, http.MethodPost, "/api/v1/products", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}

			resp := decode[api.ErrorResponse](t, w)
			if resp.Error.Code != "validation_failed" {
				t.Errorf("expected code validation_failed, got %q", resp.Error.Code)
			}
			for _, field := range tt.expectedFields {
				found := slices.ContainsFunc(resp.Error.Fields, func(f apperrors.FieldError) bool {
					return f.Field == field
				})
				if !found {
					t.Errorf("expected error for field %q, got %+v", field, resp.Error.Fields)
				}
			}

			list := decode[api.ListResponse](t, do(r, http.MethodGet, "/api/v1/products", ""))
			if list.TotalItems != 0 {
				t.Errorf("invalid product was stored")
			}
		})
	}
}

func TestCreateProduct_MalformedJSON(t *testing.T) {
	w := do(newRouter(t), http.MethodPost, "/api/v1/products", `{"name": "Broken" "price": 1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	w := do(newRouter(t, catalog()...), http.MethodGet, "/api/v1/products/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateProduct(t *testing.T) {
	r := newRouter(t, catalog()...)

	w := do(r, http.MethodPatch, "/api/v1/products/p2", `{"stock":7,"price":"75.50"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[api.ProductResponse](t, w)
	if resp.ID != "p2" || resp.Name != "Jacket" || resp.Stock != 7 || !resp.Price.Equal(decimal.RequireFromString("75.5")) {
		t.Errorf("unexpected product: %+v", resp)
	}

	if w := do(r, http.MethodPatch, "/api/v1/products/missing", `{"stock":1}`); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, "/api/v1/products/p2", `{"name":"  "}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank name, got %d", w.Code)
	}
}

func TestDeleteProducts(t *testing.T) {
	r := newRouter(t, catalog()...)

	do(r, http.MethodPost, "/api/v1/selection/p1/toggle", "")

	w := do(r, http.MethodPost, "/api/v1/products/delete", `{"ids":["p1","p3","nope"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := decode[api.DeleteProductsResponse](t, w); resp.Deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", resp.Deleted)
	}

	sel := decode[api.SelectionResponse](t, do(r, http.MethodGet, "/api/v1/selection", ""))
	if len(sel.IDs) != 0 {
		t.Errorf("deleted product still selected: %v", sel.IDs)
	}

	if w := do(r, http.MethodDelete, "/api/v1/products/p2", ""); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/v1/products/delete", `{"ids":[]}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty id list, got %d", w.Code)
	}
}

func TestListProducts_FiltersSortAndPagination(t *testing.T) {
	r := newRouter(t, catalog()...)

	if w := do(r, http.MethodPut, "/api/v1/filters", `{"only_in_stock":true}`); w.Code != http.StatusOK {
		t.Fatalf("set filters: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/api/v1/sort", `{"field":"price","direction":"desc"}`); w.Code != http.StatusOK {
		t.Fatalf("set sort: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/api/v1/pagination", `{"page":2,"page_size":1}`); w.Code != http.StatusOK {
		t.Fatalf("set pagination: expected 200, got %d", w.Code)
	}

	list := decode[api.ListResponse](t, do(r, http.MethodGet, "/api/v1/products", ""))
	if list.TotalItems != 2 || list.TotalPages != 2 || list.Page != 2 || list.HasMore {
		t.Errorf("unexpected pagination: %+v", list)
	}
	items, ok := list.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one item, got %v", list.Data)
	}
	if id := items[0].(map[string]any)["id"]; id != "p3" {
		t.Errorf("expected p3 on page 2, got %v", id)
	}

	sort := decode[models.SortState](t, do(r, http.MethodGet, "/api/v1/sort", ""))
	if sort.Field != models.SortByPrice || sort.Direction != models.SortDesc {
		t.Errorf("unexpected sort: %+v", sort)
	}
}

func TestSetViewState_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"Unknown sort field", "/api/v1/sort", `{"field":"colour"}`},
		{"Unknown sort direction", "/api/v1/sort", `{"field":"name","direction":"up"}`},
		{"Zero page", "/api/v1/pagination", `{"page":0,"page_size":10}`},
		{"Oversized page", "/api/v1/pagination", `{"page":1,"page_size":1000}`},
		{"Unknown category filter", "/api/v1/filters", `{"categories":["Toys"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(t), http.MethodPut, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestCategoryStats(t *testing.T) {
	r := newRouter(t, catalog()...)
	do(r, http.MethodPut, "/api/v1/filters", `{"categories":["Books"]}`)

	stats := decode[[]models.CategoryCount](t, do(r, http.MethodGet, "/api/v1/categories/stats", ""))
	expected := []models.CategoryCount{
		{Category: models.CategoryElectronics, Count: 1},
		{Category: models.CategoryClothing, Count: 1},
		{Category: models.CategoryBooks, Count: 1},
	}
	if !slices.Equal(stats, expected) {
		t.Errorf("expected %+v, got %+v", expected, stats)
	}
}

func TestSelection(t *testing.T) {
	r := newRouter(t, catalog()...)

	sel := decode[api.SelectionResponse](t, do(r, http.MethodPost, "/api/v1/selection/p2/toggle", ""))
	if !slices.Equal(sel.IDs, []string{"p2"}) {
		t.Errorf("expected [p2], got %v", sel.IDs)
	}

	product := decode[api.ProductResponse](t, do(r, http.MethodGet, "/api/v1/products/p2", ""))
	if !product.Selected {
		t.Errorf("expected p2 to be marked selected")
	}

	sel = decode[api.SelectionResponse](t, do(r, http.MethodPost, "/api/v1/selection/toggle-visible", ""))
	if len(sel.IDs) != 3 {
		t.Errorf("expected every visible product selected, got %v", sel.IDs)
	}

	sel = decode[api.SelectionResponse](t, do(r, http.MethodPost, "/api/v1/selection/toggle-visible", ""))
	if len(sel.IDs) != 0 {
		t.Errorf("expected selection cleared, got %v", sel.IDs)
	}
}

func TestParseAllowedOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty uses default", "", []string{"http://localhost:5173"}},
		{"Only separators uses default", " , ,", []string{"http://localhost:5173"}},
		{"Trims and drops blanks", " https://a.example , ,https://b.example", []string{"https://a.example", "https://b.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := api.ParseAllowedOrigins(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
