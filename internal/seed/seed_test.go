package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockboard/stockboard/internal/models"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := Generate(NewRand(42), now)

	total := 0
	for _, items := range catalogItems {
		total += len(items)
	}
	if len(products) < total || len(products) > total*3 {
		t.Fatalf("expected between %d and %d products, got %d", total, total*3, len(products))
	}

	seen := make(map[string]bool)
	since := now.AddDate(0, -6, 0)
	for _, p := range products {
		if seen[p.ID] {
			t.Errorf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true

		if !p.Category.Valid() {
			t.Errorf("%s: invalid category %q", p.ID, p.Category)
		}
		if p.Stock < 0 || p.Stock >= 100 {
			t.Errorf("%s: stock %d out of range", p.ID, p.Stock)
		}
		if p.Price.LessThan(decimal.NewFromInt(10)) || p.Price.GreaterThan(decimal.NewFromInt(510)) {
			t.Errorf("%s: price %s out of range", p.ID, p.Price)
		}
		if p.Price.Exponent() < -2 {
			t.Errorf("%s: price %s not rounded to cents", p.ID, p.Price)
		}
		if p.CreatedAt.Before(since) || p.CreatedAt.After(now) {
			t.Errorf("%s: createdAt %v outside the last six months", p.ID, p.CreatedAt)
		}
		if p.UpdatedAt.Before(p.CreatedAt) || p.UpdatedAt.After(now) {
			t.Errorf("%s: updatedAt %v not between createdAt and now", p.ID, p.UpdatedAt)
		}
		if p.Description == nil || !strings.Contains(*p.Description, strings.ToLower(p.Name)) {
			t.Errorf("%s: unexpected description %v", p.ID, p.Description)
		}
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := Generate(NewRand(7), now)
	b := Generate(NewRand(7), now)

	if len(a) != len(b) {
		t.Fatalf("expected equal length, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].Price.Equal(b[i].Price) || a[i].Stock != b[i].Stock {
			t.Fatalf("product %d differs between runs", i)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{"id": "a1", "name": "Desk", "category": "Furniture", "price": "120.50", "stock": 4},
		{"name": "Tea", "category": "Food", "price": 3.2, "stock": 0, "description": "Green tea"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	products, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "a1" || products[0].Category != models.CategoryFurniture {
		t.Errorf("unexpected first product: %+v", products[0])
	}
	if !products[0].Price.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("expected price 120.5, got %s", products[0].Price)
	}
	if products[1].Description == nil || *products[1].Description != "Green tea" {
		t.Errorf("expected description on second product")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Errorf("expected error for malformed file")
	}
}
