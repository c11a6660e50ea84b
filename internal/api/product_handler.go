package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acme-services/catalog-api/internal/api/shared"
	"github.com/acme-services/catalog-api/internal/domain"
	"github.com/acme-services/catalog-api/internal/platform/logger"
	"github.com/acme-services/catalog-api/internal/redact"
	"github.com/acme-services/catalog-api/internal/store"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	productStore store.ProductStore
	logger       *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productStore store.ProductStore, log *slog.Logger) *ProductHandler {
	if productStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("productStore cannot be nil for ProductHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}

	return &ProductHandler{
		productStore: productStore,
		logger:       log.With(slog.String("component", "product_handler")),
	}
}

// ListProducts handles GET /api/products requests.
// It returns the filtered, sorted, paginated page of products together
// with the unfiltered catalog total (see ListProductsResponse).
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	filter, fieldErrors := parseListQuery(r)
	if len(fieldErrors) > 0 {
		log.Debug("list query validation failed", slog.Int("error_count", len(fieldErrors)))
		shared.RespondWithValidationErrors(w, r, fieldErrors)
		return
	}

	products, err := h.productStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list products", err)
		return
	}

	total, err := h.productStore.CountAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list products", err)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, productToResponse(p))
	}

	log.Debug("listed products",
		slog.Int("count", len(responses)),
		slog.Int64("total", total))
	shared.RespondWithJSON(w, r, http.StatusOK, ListProductsResponse{
		Products: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	})
}

// GetProduct handles GET /api/products/{id} requests.
// The path id must parse as a positive integer; anything else is a 400
// that never reaches storage.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, fieldErrors := parseProductID(r)
	if len(fieldErrors) > 0 {
		log.Debug("invalid product id", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithValidationErrors(w, r, fieldErrors)
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			log.Debug("product not found", slog.Int64("id", id))
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get product", err)
		return
	}

	log.Debug("retrieved product", slog.Int64("id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// CreateProduct handles POST /api/products requests.
// The product row and all image rows are persisted in one transaction;
// the created product is re-read so the response reflects exactly what
// was stored.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProductRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	fieldErrors := validateCreateRequest(&req)
	if len(fieldErrors) > 0 {
		log.Debug("create request validation failed", slog.Int("error_count", len(fieldErrors)))
		shared.RespondWithValidationErrors(w, r, fieldErrors)
		return
	}

	product, err := domain.NewProduct(req.Name, req.Description, *req.Price, req.Category, req.ImageURLs)
	if err != nil {
		log.Debug("invalid product data", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product data: "+err.Error())
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create product"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	// Re-read the stored product so the response mirrors the database
	// state, images included.
	created, err := h.productStore.GetByID(r.Context(), product.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create product", err)
		return
	}

	log.Info("created product",
		slog.Int64("id", created.ID),
		slog.String("category", created.Category),
		slog.Int("image_count", len(created.ImageURLs)))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateProductResponse{
		Message: "Product created successfully",
		Product: productToResponse(created),
	})
}

// parseProductID extracts and validates the {id} path parameter.
func parseProductID(r *http.Request) (int64, []shared.FieldError) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, []shared.FieldError{{Field: "id", Message: "must be a positive integer"}}
	}
	return id, nil
}

// validateCreateRequest runs the declarative rules for the create
// endpoint and returns the ordered per-field failures. The imageUrls
// presence check is explicit because an absent array and an empty array
// must be told apart: the former is rejected, the latter accepted.
func validateCreateRequest(req *CreateProductRequest) []shared.FieldError {
	var fieldErrors []shared.FieldError

	if err := shared.Validate.Struct(req); err != nil {
		fieldErrors = ValidationFieldErrors(err)
	}

	if req.ImageURLs == nil {
		fieldErrors = append(fieldErrors, shared.FieldError{Field: "imageUrls", Message: "is required"})
	}

	return fieldErrors
}
