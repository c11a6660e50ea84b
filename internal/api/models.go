package api

import (
	"net/http"
	"strconv"

	"github.com/acme-services/catalog-api/internal/api/shared"
	"github.com/acme-services/catalog-api/internal/domain"
	"github.com/acme-services/catalog-api/internal/store"
)

// CreateProductRequest represents the request body for creating a product.
// The imageUrls field must be present; an empty array is accepted since
// per-element validation trivially passes on it.
type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Category    string   `json:"category"    validate:"required"`
	ImageURLs   []string `json:"imageUrls"   validate:"dive,image_url"`
}

// listProductsQuery holds the decoded query-string parameters of the
// list endpoint, before they are turned into a store.ListFilter.
type listProductsQuery struct {
	Search   string   `json:"search"   validate:"omitempty"`
	Category string   `json:"category" validate:"omitempty"`
	MinPrice *float64 `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	Sort     string   `json:"sort"     validate:"omitempty,oneof=new priceAsc priceDesc"`
	Page     int      `json:"page"     validate:"gte=1"`
	Limit    int      `json:"limit"    validate:"gte=1,lte=100"`
}

// ProductResponse represents the response data for a product.
// ImageURLs is always a non-nil array, empty when no images exist.
type ProductResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURLs   []string `json:"imageUrls"`
}

// ListProductsResponse is the body of a successful list request.
//
// Total is the size of the whole catalog, NOT the count matching the
// active filters; pagination math against a filtered listing must not
// assume the two agree. Page and Limit echo the effective pagination.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// CreateProductResponse is the body of a successful create request.
type CreateProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// productToResponse converts a domain.Product to a ProductResponse.
func productToResponse(p *domain.Product) ProductResponse {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURLs:   imageURLs,
	}
}

// parseListQuery decodes and validates the list endpoint's query
// parameters. It returns the resulting filter and the ordered list of
// per-field validation failures; a non-empty list means the request must
// be rejected with a 400 before any storage work.
func parseListQuery(r *http.Request) (store.ListFilter, []shared.FieldError) {
	q := r.URL.Query()

	query := listProductsQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Page:     store.DefaultPage,
		Limit:    store.DefaultLimit,
	}

	var fieldErrors []shared.FieldError

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, shared.FieldError{Field: "page", Message: "must be an integer"})
		} else {
			query.Page = page
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, shared.FieldError{Field: "limit", Message: "must be an integer"})
		} else {
			query.Limit = limit
		}
	}
	if raw := q.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, shared.FieldError{Field: "minPrice", Message: "must be a number"})
		} else {
			query.MinPrice = &minPrice
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, shared.FieldError{Field: "maxPrice", Message: "must be a number"})
		} else {
			query.MaxPrice = &maxPrice
		}
	}

	if err := shared.Validate.Struct(query); err != nil {
		fieldErrors = append(fieldErrors, ValidationFieldErrors(err)...)
	}

	filter := store.ListFilter{
		Search:   query.Search,
		Category: query.Category,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Sort:     query.Sort,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	return filter, fieldErrors
}
