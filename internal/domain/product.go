package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// Product-specific validation errors
var (
	// ErrProductNameEmpty is returned when a product name is empty.
	ErrProductNameEmpty = errors.New("product name cannot be empty")

	// ErrProductDescriptionEmpty is returned when a product description is empty.
	ErrProductDescriptionEmpty = errors.New("product description cannot be empty")

	// ErrProductCategoryEmpty is returned when a product category is empty.
	ErrProductCategoryEmpty = errors.New("product category cannot be empty")

	// ErrProductPriceNegative is returned when a product price is below zero.
	ErrProductPriceNegative = errors.New("product price cannot be negative")

	// ErrProductImageURLInvalid is returned when an image URL is not an
	// absolute URL with a scheme and host.
	ErrProductImageURLInvalid = errors.New("product image URL must be an absolute URL")
)

// Product represents a catalog product together with the URLs of its
// images. The ID is assigned by the database on creation and doubles as
// the insertion-order proxy for "newest" sorting.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURLs   []string `json:"imageUrls"`
}

// ProductImage represents a single image row owned by a product.
// Images have no lifecycle of their own; they are created alongside the
// product and removed with it.
type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

// NewProduct creates a Product from its field values, normalizing a nil
// image slice to an empty one, and validates it.
func NewProduct(name, description string, price float64, category string, imageURLs []string) (*Product, error) {
	if imageURLs == nil {
		imageURLs = []string{}
	}

	p := &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURLs:   imageURLs,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the product satisfies all domain invariants.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrProductNameEmpty
	}
	if p.Description == "" {
		return ErrProductDescriptionEmpty
	}
	if p.Category == "" {
		return ErrProductCategoryEmpty
	}
	if p.Price < 0 {
		return ErrProductPriceNegative
	}
	for _, raw := range p.ImageURLs {
		if !IsValidImageURL(raw) {
			return fmt.Errorf("%w: %q", ErrProductImageURLInvalid, raw)
		}
	}
	return nil
}

// NormalizeImageURLs guarantees the ImageURLs slice is non-nil so that
// every serialized product carries an imageUrls array, never null.
func (p *Product) NormalizeImageURLs() {
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
}

// IsValidImageURL reports whether raw parses as an absolute URL with
// both a scheme and a host.
func IsValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
