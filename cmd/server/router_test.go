package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-services/catalog-api/internal/config"
	"github.com/acme-services/catalog-api/internal/domain"
	"github.com/acme-services/catalog-api/internal/store"
)

// stubProductStore satisfies store.ProductStore for router-level tests;
// the handlers' own behavior is covered in the api package.
type stubProductStore struct{}

func (s *stubProductStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Product, error) {
	return []*domain.Product{}, nil
}

func (s *stubProductStore) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *stubProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, store.ErrProductNotFound
}

func (s *stubProductStore) Create(ctx context.Context, product *domain.Product) error {
	product.ID = 1
	return nil
}

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
			CORS: config.CORSConfig{AllowedOrigins: []string{
				"https://acme-services.vercel.app",
				"http://localhost:3000",
			}},
		},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		productStore: &stubProductStore{},
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterSecurityHeaders(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRouterCORS(t *testing.T) {
	t.Parallel()

	t.Run("allow-listed origin receives CORS headers", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "https://acme-services.vercel.app")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://acme-services.vercel.app",
			rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin receives no CORS headers", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"),
			"cross-origin responses must not be granted to unlisted origins")
	})

	t.Run("request without Origin header is served", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight for allow-listed origin succeeds", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000",
			rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
