// Package seed provides the initial product catalog for a session, either
// generated or read from a JSON file.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockboard/stockboard/internal/models"
)

var catalogItems = map[models.Category][]string{
	models.CategoryElectronics: {"Smartphone", "Laptop", "Headphones", "Tablet", "Smart Watch", "Camera", "Speaker"},
	models.CategoryClothing:    {"T-shirt", "Jeans", "Sweater", "Jacket", "Dress", "Socks", "Shoes"},
	models.CategoryFood:        {"Pasta", "Rice", "Cereal", "Coffee", "Tea", "Chocolate", "Snacks"},
	models.CategoryFurniture:   {"Chair", "Table", "Sofa", "Desk", "Bookshelf", "Bed", "Lamp"},
	models.CategoryBooks:       {"Fiction", "History", "Science", "Biography", "Art", "Business", "Technology"},
}

var variations = []string{"", " Premium", " Deluxe"}

// Generate builds a demo catalog: every catalog item in one to three
// variations, with random stock, price and timestamps from the six months
// before now. Ids are "1", "2", ... in generation order.
func Generate(rng *rand.Rand, now time.Time) []*models.Product {
	var products []*models.Product
	since := now.AddDate(0, -6, 0)
	next := 1

	for _, category := range models.Categories {
		for _, item := range catalogItems[category] {
			count := rng.IntN(len(variations)) + 1
			for i := range count {
				name := item + variations[i]
				createdAt := between(rng, since, now)
				description := fmt.Sprintf("High-quality %s for all your needs.", strings.ToLower(name))

				products = append(products, &models.Product{
					ID:          strconv.Itoa(next),
					Name:        name,
					Category:    category,
					Price:       decimal.NewFromFloat(rng.Float64()*500 + 10).Round(2),
					Stock:       rng.IntN(100),
					Description: &description,
					CreatedAt:   createdAt,
					UpdatedAt:   between(rng, createdAt, now),
				})
				next++
			}
		}
	}
	return products
}

func between(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int64N(int64(span))))
}

// NewRand returns a generator seeded with seed, or with the current time
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// LoadFile reads a JSON array of products.
func LoadFile(path string) ([]*models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var products []*models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return products, nil
}
