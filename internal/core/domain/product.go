package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item owned by the supplier that created it.
// Rating is the mean grade over active reviews, maintained by the
// rating refresher.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int64   `json:"stock"`
	CategoryID  int64   `json:"category_id"`
	SupplierID  int64   `json:"supplier_id"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"is_active"`
}

// Sellable reports whether the product should be visible in the catalog.
func (p *Product) Sellable() bool {
	return p.IsActive && p.Stock > 0
}
