package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/acme-services/catalog-api/internal/domain"
	"github.com/acme-services/catalog-api/internal/store"
)

// ProductStore implements the store.ProductStore interface using a
// PostgreSQL database as the storage backend.
type ProductStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewProductStore(db *sql.DB, logger *slog.Logger) *ProductStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for ProductStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// List implements store.ProductStore.List.
// It runs the filter's parameterized query, scans the page of products,
// and attaches image URLs with a single batched lookup for the whole
// page rather than one query per row.
func (s *ProductStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Product, error) {
	query, args := buildListQuery(filter)

	s.logger.Debug("listing products",
		slog.String("sort", filter.Sort),
		slog.Int("page", filter.Page),
		slog.Int("limit", filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", MapError(err))
		}
		p.ImageURLs = []string{}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", MapError(err))
	}

	if err := s.attachImages(ctx, s.db, products); err != nil {
		return nil, err
	}

	return products, nil
}

// CountAll implements store.ProductStore.CountAll.
// The count deliberately ignores any list filter; see the interface
// documentation.
func (s *ProductStore) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", MapError(err))
	}
	return total, nil
}

// GetByID implements store.ProductStore.GetByID.
// Returns store.ErrProductNotFound if no product has the given ID.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, price, category FROM products WHERE id = $1",
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", store.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product: %w", MapError(err))
	}

	p.ImageURLs = []string{}
	if err := s.attachImages(ctx, s.db, []*domain.Product{&p}); err != nil {
		return nil, err
	}

	return &p, nil
}

// Create implements store.ProductStore.Create.
// The product row and all of its image rows are inserted in one
// transaction: a failure at any step rolls everything back, so no
// orphaned product is ever left behind by a partial write.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			"INSERT INTO products (name, description, price, category) VALUES ($1, $2, $3, $4) RETURNING id",
			product.Name, product.Description, product.Price, product.Category,
		).Scan(&product.ID)
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", MapError(err))
		}

		for _, imageURL := range product.ImageURLs {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO product_images (product_id, image_url) VALUES ($1, $2)",
				product.ID, imageURL,
			)
			if err != nil {
				return fmt.Errorf("failed to insert product image: %w", MapError(err))
			}
		}

		return nil
	})
}

// attachImages fetches the image URLs for every product in the slice
// with one batched query and groups them in memory, preserving insertion
// order per product.
func (s *ProductStore) attachImages(ctx context.Context, db store.DBTX, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	byID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	rows, err := db.QueryContext(ctx,
		"SELECT product_id, image_url FROM product_images WHERE product_id = ANY($1) ORDER BY id",
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to query product images: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	for rows.Next() {
		var productID int64
		var imageURL string
		if err := rows.Scan(&productID, &imageURL); err != nil {
			return fmt.Errorf("failed to scan product image row: %w", MapError(err))
		}
		if p, ok := byID[productID]; ok {
			p.ImageURLs = append(p.ImageURLs, imageURL)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate product image rows: %w", MapError(err))
	}

	return nil
}
