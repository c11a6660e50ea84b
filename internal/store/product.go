package store

import (
	"context"

	"github.com/acme-services/catalog-api/internal/domain"
)

// Sort tokens accepted by ListFilter.Sort. They form a closed
// enumeration: the query layer maps them to a fixed (column, direction)
// pair and never interpolates client input into ORDER BY.
const (
	SortNewest    = "new"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

// Pagination bounds for ListFilter.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListFilter holds the validated filter, sort, and pagination parameters
// for a product listing. Zero-valued string fields and nil price bounds
// mean "no constraint".
type ListFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

// Offset returns the row offset implied by the filter's page and limit.
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	return (page - 1) * limit
}

// ProductStore defines the persistence operations for products and their
// images. Implementations attach image URLs to every product they return;
// the ImageURLs field is always a non-nil slice.
type ProductStore interface {
	// List returns the page of products selected by the filter, each with
	// its image URLs attached in insertion order.
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, error)

	// CountAll returns the total number of products in the catalog,
	// regardless of any filter. Listing responses pair this unfiltered
	// total with a filtered page; see the handler documentation.
	CountAll(ctx context.Context) (int64, error)

	// GetByID returns the product with the given ID and its image URLs.
	// Returns ErrProductNotFound if no such product exists.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create persists the product and one image row per URL, atomically.
	// Either the product and all of its images are stored, or nothing is.
	// On success the product's ID is populated.
	Create(ctx context.Context, product *domain.Product) error
}
