package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-services/catalog-api/internal/domain"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	t.Run("valid product", func(t *testing.T) {
		t.Parallel()

		p, err := domain.NewProduct("Widget", "A widget", 9.99, "tools",
			[]string{"https://example.com/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)
		assert.Equal(t, []string{"https://example.com/a.png"}, p.ImageURLs)
	})

	t.Run("nil image slice normalizes to empty", func(t *testing.T) {
		t.Parallel()

		p, err := domain.NewProduct("Widget", "A widget", 9.99, "tools", nil)
		require.NoError(t, err)
		assert.NotNil(t, p.ImageURLs)
		assert.Empty(t, p.ImageURLs)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewProduct("Widget", "A widget", 0, "tools", []string{})
		assert.NoError(t, err)
	})

	tests := []struct {
		name        string
		productName string
		description string
		price       float64
		category    string
		imageURLs   []string
		wantErr     error
	}{
		{"empty name", "", "desc", 1, "tools", nil, domain.ErrProductNameEmpty},
		{"empty description", "Widget", "", 1, "tools", nil, domain.ErrProductDescriptionEmpty},
		{"empty category", "Widget", "desc", 1, "", nil, domain.ErrProductCategoryEmpty},
		{"negative price", "Widget", "desc", -0.01, "tools", nil, domain.ErrProductPriceNegative},
		{"relative image URL", "Widget", "desc", 1, "tools",
			[]string{"not-a-url"}, domain.ErrProductImageURLInvalid},
		{"scheme-only image URL", "Widget", "desc", 1, "tools",
			[]string{"https://"}, domain.ErrProductImageURLInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewProduct(tc.productName, tc.description, tc.price, tc.category, tc.imageURLs)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

func TestIsValidImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"https URL", "https://example.com/a.png", true},
		{"http URL", "http://cdn.example.com/img/1.jpg", true},
		{"missing scheme", "example.com/a.png", false},
		{"missing host", "https://", false},
		{"plain word", "not-a-url", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, domain.IsValidImageURL(tc.raw))
		})
	}
}

func TestNormalizeImageURLs(t *testing.T) {
	t.Parallel()

	p := &domain.Product{Name: "Widget", Description: "d", Category: "tools"}
	p.NormalizeImageURLs()
	assert.NotNil(t, p.ImageURLs)
	assert.Empty(t, p.ImageURLs)
}
