// Package catalog holds the static product reference data and the
// read-only lookups over it. The dataset is fixed at build time and is
// never mutated at runtime: every accessor returns decorated copies, so
// callers cannot reach the backing arrays. Prices are derived on read:
// the discounted final price is computed from the original price and
// discount percent and is never stored as source of truth.
package catalog

import (
	"errors"
	"math"
)

// ErrCategoryNotFound is returned when a category slug is unknown.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned when no product matches the given id.
var ErrProductNotFound = errors.New("product not found")

// Category describes a storefront section as shown on the landing page.
type Category struct {
	Name        string `json:"name"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
}

// Product is a catalog entry decorated with its derived final price.
// IsAccount and Verified only apply to account-sale listings in the
// social category and are zero-valued elsewhere.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	Discount      int     `json:"discount"`
	FinalPrice    float64 `json:"final_price"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	IsAccount     bool    `json:"is_account"`
	Verified      bool    `json:"verified"`
}

// entry is the raw, undecorated form a product is declared in. The
// category and final price are filled in by the accessors.
type entry struct {
	ID            string
	Name          string
	OriginalPrice float64
	Discount      int
	Image         string
	IsAccount     bool
	Verified      bool
}

// FinalPrice applies the discount percent to the original price and
// rounds to two decimals (half away from zero).
func FinalPrice(original float64, discount int) float64 {
	return math.Round(original*(1-float64(discount)/100)*100) / 100
}

// Categories returns the category map keyed by slug.
func Categories() map[string]Category {
	out := make(map[string]Category, len(categories))
	for slug, c := range categories {
		out[slug] = c
	}
	return out
}

// ProductsByCategory returns all products of a category, each decorated
// with its final price. It fails with ErrCategoryNotFound for unknown
// slugs.
func ProductsByCategory(category string) ([]Product, error) {
	entries, ok := products[category]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	out := make([]Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, decorate(e, category))
	}
	return out, nil
}

// ProductByID scans all categories for the given product id. The
// catalog is static and small, so a linear scan is fine.
func ProductByID(id string) (Product, error) {
	for category, entries := range products {
		for _, e := range entries {
			if e.ID == id {
				return decorate(e, category), nil
			}
		}
	}
	return Product{}, ErrProductNotFound
}

func decorate(e entry, category string) Product {
	return Product{
		ID:            e.ID,
		Name:          e.Name,
		OriginalPrice: e.OriginalPrice,
		Discount:      e.Discount,
		FinalPrice:    FinalPrice(e.OriginalPrice, e.Discount),
		Image:         e.Image,
		Category:      category,
		IsAccount:     e.IsAccount,
		Verified:      e.Verified,
	}
}
